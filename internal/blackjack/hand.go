package blackjack

import (
	"strings"

	"github.com/cardroom/blackjack/internal/deck"
)

// Hand is an ordered sequence of cards belonging to one participant for the
// duration of a single game. Hands only ever grow.
type Hand []deck.Card

// Add appends a dealt card to the hand
func (h Hand) Add(card deck.Card) Hand {
	return append(h, card)
}

// Value returns the best blackjack total for the hand: face cards count 10,
// aces count 11 and are demoted to 1 one at a time while the total exceeds
// 21. The result is the highest total <= 21, or the minimal total when the
// hand is bust.
func (h Hand) Value() int {
	value, _ := h.value()
	return value
}

// IsSoft returns true if the hand contains an ace still counted as 11
func (h Hand) IsSoft() bool {
	_, soft := h.value()
	return soft
}

func (h Hand) value() (int, bool) {
	value := 0
	aces := 0

	for _, card := range h {
		switch {
		case card.IsAce():
			aces++
			value += 11
		case card.IsTenValue():
			value += 10
		default:
			value += int(card.Rank)
		}
	}

	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}

	return value, aces > 0
}

// IsBlackjack returns true for a natural: exactly two cards totaling 21.
// Naturals only carry special meaning during the initial deal; once a hand
// has been hit, a multi-card 21 compares equal to any other 21.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == 21
}

// IsBust returns true if the hand value exceeds 21
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// String renders the hand as space-separated cards (e.g. "A♠ T♥")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, card := range h {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

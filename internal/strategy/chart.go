package strategy

import (
	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/cardroom/blackjack/internal/deck"
)

// Chart decides by a stand threshold per dealer upcard: hit while the hand
// value is below the threshold for the visible dealer card. Upcards are
// bucketed by blackjack value, 2-10 plus 11 for an ace.
type Chart struct {
	// thresholds is indexed by upcard value 2..11
	thresholds [12]int
}

// NewChart builds a chart from per-upcard stand thresholds. Upcard values
// without an entry use the fallback threshold.
func NewChart(fallback int, thresholds map[int]int) *Chart {
	c := &Chart{}
	for v := 2; v <= 11; v++ {
		c.thresholds[v] = fallback
	}
	for v, threshold := range thresholds {
		if v >= 2 && v <= 11 {
			c.thresholds[v] = threshold
		}
	}
	return c
}

// DefaultChart approximates basic strategy standing rules: stand early
// against weak dealer upcards (the dealer is likely to bust drawing to 17),
// draw to 17 against strong ones.
func DefaultChart() *Chart {
	return NewChart(17, map[int]int{
		2: 13,
		3: 13,
		4: 12,
		5: 12,
		6: 12,
	})
}

// Decide returns true while the hand value is below the threshold for the
// dealer's upcard
func (c *Chart) Decide(hand blackjack.Hand, upcard deck.Card) bool {
	return hand.Value() < c.thresholds[upcardValue(upcard)]
}

// Threshold reports the stand threshold used against an upcard value
func (c *Chart) Threshold(upcard int) int {
	if upcard < 2 || upcard > 11 {
		return 0
	}
	return c.thresholds[upcard]
}

func upcardValue(card deck.Card) int {
	switch {
	case card.IsAce():
		return 11
	case card.IsTenValue():
		return 10
	default:
		return int(card.Rank)
	}
}

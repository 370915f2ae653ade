package deck

import (
	"errors"
	rand "math/rand/v2"
)

// deckSize is the number of cards in one standard deck
const deckSize = 52

// ErrNoDecks is returned when a shoe is requested with fewer than one deck
var ErrNoDecks = errors.New("shoe requires at least one deck")

// Shoe is one or more shuffled 52-card decks dealt from the top. When the
// last card has been dealt the shoe rebuilds and reshuffles itself, so
// dealing never fails; this models a casino continuously re-shoeing.
//
// The random source is owned by the shoe and injected at construction so
// shuffles are reproducible under a fixed seed. A Shoe is not safe for
// concurrent use; each simulation worker owns its own.
type Shoe struct {
	decks int
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a shuffled shoe of decks standard decks using rng as its
// shuffle source.
func NewShoe(decks int, rng *rand.Rand) (*Shoe, error) {
	if decks < 1 {
		return nil, ErrNoDecks
	}

	s := &Shoe{
		decks: decks,
		cards: make([]Card, 0, decks*deckSize),
		rng:   rng,
	}
	s.rebuild()
	return s, nil
}

// rebuild restores the full complement of cards and shuffles
func (s *Shoe) rebuild() {
	s.cards = s.cards[:0]
	for d := 0; d < s.decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Deal removes and returns the top card. An exhausted shoe is rebuilt and
// reshuffled before dealing, so Deal always returns a card.
func (s *Shoe) Deal() Card {
	if len(s.cards) == 0 {
		s.rebuild()
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Reset rebuilds and reshuffles the shoe, callable between games
func (s *Shoe) Reset() {
	s.rebuild()
}

// Remaining returns the number of undealt cards
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Size returns the number of cards in a freshly built shoe
func (s *Shoe) Size() int {
	return s.decks * deckSize
}

// Package strategy provides player decision strategies for the blackjack
// engine. Strategies are pure: the same hand and upcard always produce the
// same decision, which keeps games replayable under a fixed seed and lets
// trained policies slot in without engine changes.
package strategy

import (
	"fmt"

	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/cardroom/blackjack/internal/deck"
)

// Func adapts a plain decision function to blackjack.Strategy
type Func func(hand blackjack.Hand, upcard deck.Card) bool

// Decide calls the wrapped function
func (f Func) Decide(hand blackjack.Hand, upcard deck.Card) bool {
	return f(hand, upcard)
}

// Basic is the default strategy: hit while the hand value is below 17
type Basic struct{}

// Decide returns true while the hand value is below 17
func (Basic) Decide(hand blackjack.Hand, _ deck.Card) bool {
	return hand.Value() < 17
}

// Stand never takes another card
type Stand struct{}

// Decide always returns false
func (Stand) Decide(blackjack.Hand, deck.Card) bool {
	return false
}

// Hit always takes another card
type Hit struct{}

// Decide always returns true
func (Hit) Decide(blackjack.Hand, deck.Card) bool {
	return true
}

// New returns the named built-in strategy
func New(name string) (blackjack.Strategy, error) {
	switch name {
	case "basic":
		return Basic{}, nil
	case "stand":
		return Stand{}, nil
	case "hit":
		return Hit{}, nil
	case "chart":
		return DefaultChart(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Names lists the built-in strategy names accepted by New
func Names() []string {
	return []string{"basic", "stand", "hit", "chart"}
}

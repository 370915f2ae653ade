package blackjack

import (
	"errors"
	"time"

	"github.com/cardroom/blackjack/internal/deck"
	"github.com/cardroom/blackjack/internal/randutil"
)

// ErrNilStrategy is returned when Play is invoked without a strategy
var ErrNilStrategy = errors.New("strategy must not be nil")

// Strategy decides whether the player hits. Implementations must be pure
// functions of the hand and upcard: no hidden state, no randomness, so that
// an identical (hand, upcard) pair always yields the same decision.
type Strategy interface {
	Decide(hand Hand, upcard deck.Card) bool
}

// Config configures a game session
type Config struct {
	// Decks is the number of 52-card decks in the shoe (>= 1)
	Decks int

	// Seed seeds the shoe's random source; 0 derives a seed from the clock
	Seed int64

	// Events receives per-deal and per-decision events when set. Attaching
	// or detaching a sink never changes game outcomes.
	Events EventSink
}

// Game runs complete blackjack hands against a fixed-policy dealer. The
// shoe persists across games and re-shoes itself transparently, so a single
// Game can play arbitrarily many hands. A Game is not safe for concurrent
// use; run parallel experiments with one Game per worker.
type Game struct {
	shoe   *deck.Shoe
	events EventSink
}

// New creates a game session with a freshly shuffled shoe
func New(cfg Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	shoe, err := deck.NewShoe(cfg.Decks, randutil.New(seed))
	if err != nil {
		return nil, err
	}

	return &Game{
		shoe:   shoe,
		events: cfg.Events,
	}, nil
}

// Reset rebuilds and reshuffles the shoe between games
func (g *Game) Reset() {
	g.shoe.Reset()
}

// Shoe exposes the game's shoe for stepwise play (interactive mode)
func (g *Game) Shoe() *deck.Shoe {
	return g.shoe
}

// Play runs one complete game: initial deal, player turn driven by the
// strategy, fixed dealer turn, then resolution.
func (g *Game) Play(strategy Strategy) (Outcome, error) {
	if strategy == nil {
		return 0, ErrNilStrategy
	}

	// Initial deal: two cards each, dealer's second card stays hidden
	// until the player turn ends.
	player := Hand{}
	dealer := Hand{}
	player = g.deal(player, ParticipantPlayer, false)
	dealer = g.deal(dealer, ParticipantDealer, false)
	player = g.deal(player, ParticipantPlayer, false)
	dealer = g.deal(dealer, ParticipantDealer, true)

	upcard := dealer[0]

	// Naturals resolve immediately; a later multi-card 21 carries no
	// special priority.
	if player.IsBlackjack() || dealer.IsBlackjack() {
		return g.resolveNaturals(player, dealer), nil
	}

	// Player turn
	for {
		hit := strategy.Decide(player, upcard)
		g.emit(DecisionEvent{Hand: player, Upcard: upcard, Hit: hit, timestamp: time.Now()})
		if !hit {
			break
		}

		player = g.deal(player, ParticipantPlayer, false)
		if player.IsBust() {
			return g.finish(player, dealer, Lose), nil
		}
	}

	// Dealer turn
	dealer = DealerPlay(g.shoe, dealer, g.events)
	if dealer.IsBust() {
		return g.finish(player, dealer, Win), nil
	}

	return g.finish(player, dealer, Resolve(player, dealer)), nil
}

func (g *Game) resolveNaturals(player, dealer Hand) Outcome {
	switch {
	case player.IsBlackjack() && dealer.IsBlackjack():
		return g.finish(player, dealer, Draw)
	case player.IsBlackjack():
		return g.finish(player, dealer, Win)
	default:
		return g.finish(player, dealer, Lose)
	}
}

func (g *Game) deal(hand Hand, to Participant, hidden bool) Hand {
	card := g.shoe.Deal()
	hand = hand.Add(card)
	g.emit(DealEvent{To: to, Card: card, Hand: hand, Hidden: hidden, timestamp: time.Now()})
	return hand
}

func (g *Game) finish(player, dealer Hand, outcome Outcome) Outcome {
	g.emit(ResultEvent{PlayerHand: player, DealerHand: dealer, Outcome: outcome, timestamp: time.Now()})
	return outcome
}

func (g *Game) emit(event Event) {
	if g.events != nil {
		g.events.HandleEvent(event)
	}
}

// DealerPlay runs the fixed dealer policy against the shoe: hit strictly
// while the value is below 17. The dealer stands on soft 17; soft totals
// are not special-cased.
func DealerPlay(shoe *deck.Shoe, dealer Hand, events EventSink) Hand {
	for dealer.Value() < 17 {
		card := shoe.Deal()
		dealer = dealer.Add(card)
		if events != nil {
			events.HandleEvent(DealEvent{To: ParticipantDealer, Card: card, Hand: dealer, timestamp: time.Now()})
		}
	}
	return dealer
}

// Resolve compares two non-bust final hands from the player's perspective
func Resolve(player, dealer Hand) Outcome {
	playerValue, dealerValue := player.Value(), dealer.Value()
	switch {
	case playerValue > dealerValue:
		return Win
	case playerValue < dealerValue:
		return Lose
	default:
		return Draw
	}
}

package blackjack

import (
	"testing"

	"github.com/cardroom/blackjack/internal/deck"
	"github.com/cardroom/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategyFunc adapts a plain function for tests
type strategyFunc func(hand Hand, upcard deck.Card) bool

func (f strategyFunc) Decide(hand Hand, upcard deck.Card) bool {
	return f(hand, upcard)
}

var (
	hitBelow17  = strategyFunc(func(h Hand, _ deck.Card) bool { return h.Value() < 17 })
	alwaysStand = strategyFunc(func(Hand, deck.Card) bool { return false })
	alwaysHit   = strategyFunc(func(Hand, deck.Card) bool { return true })
)

func TestNewGameInvalidDecks(t *testing.T) {
	_, err := New(Config{Decks: 0})
	require.ErrorIs(t, err, deck.ErrNoDecks)
}

func TestPlayNilStrategy(t *testing.T) {
	game, err := New(Config{Decks: 1, Seed: 1})
	require.NoError(t, err)

	_, err = game.Play(nil)
	require.ErrorIs(t, err, ErrNilStrategy)
}

func TestPlayReturnsValidOutcome(t *testing.T) {
	game, err := New(Config{Decks: 1, Seed: 42})
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		outcome, err := game.Play(hitBelow17)
		require.NoError(t, err)
		assert.Contains(t, []Outcome{Win, Lose, Draw}, outcome)
	}
}

func TestPlayAlwaysStandNeverBustsPlayer(t *testing.T) {
	game, err := New(Config{Decks: 1, Seed: 7})
	require.NoError(t, err)

	var playerBusted bool
	game.events = SinkFunc(func(event Event) {
		if e, ok := event.(ResultEvent); ok && e.PlayerHand.IsBust() {
			playerBusted = true
		}
	})

	for i := 0; i < 500; i++ {
		_, err := game.Play(alwaysStand)
		require.NoError(t, err)
	}

	assert.False(t, playerBusted, "a standing player can never bust")
}

func TestPlayAlwaysHitBustsUnlessOpening21(t *testing.T) {
	game, err := New(Config{Decks: 1, Seed: 11})
	require.NoError(t, err)

	var results []ResultEvent
	game.events = SinkFunc(func(event Event) {
		if e, ok := event.(ResultEvent); ok {
			results = append(results, e)
		}
	})

	for i := 0; i < 500; i++ {
		_, err := game.Play(alwaysHit)
		require.NoError(t, err)
	}

	for _, r := range results {
		if r.PlayerHand.Value() == 21 && len(r.PlayerHand) == 2 {
			continue // naturals resolve before the player acts
		}
		assert.True(t, r.PlayerHand.IsBust(),
			"always-hit must bust: player %s (%d)", r.PlayerHand, r.PlayerHand.Value())
	}
}

func TestPlayerBustLosesBeforeDealerActs(t *testing.T) {
	game, err := New(Config{Decks: 4, Seed: 3})
	require.NoError(t, err)

	var lastResult ResultEvent
	game.events = SinkFunc(func(event Event) {
		if e, ok := event.(ResultEvent); ok {
			lastResult = e
		}
	})

	sawBust := false
	for i := 0; i < 500; i++ {
		outcome, err := game.Play(alwaysHit)
		require.NoError(t, err)
		if lastResult.PlayerHand.IsBust() {
			sawBust = true
			assert.Equal(t, Lose, outcome)
			// Dealer's hand stays at the two initial cards
			assert.Len(t, lastResult.DealerHand, 2)
		}
	}
	assert.True(t, sawBust, "expected at least one player bust in 500 always-hit games")
}

func TestDealerPolicy(t *testing.T) {
	var dealerFinals []Hand
	game, err := New(Config{Decks: 2, Seed: 21})
	require.NoError(t, err)
	game.events = SinkFunc(func(event Event) {
		if e, ok := event.(ResultEvent); ok {
			dealerFinals = append(dealerFinals, e.DealerHand)
		}
	})

	for i := 0; i < 500; i++ {
		_, err := game.Play(alwaysStand)
		require.NoError(t, err)
	}

	for _, dealer := range dealerFinals {
		// Dealer hits strictly below 17 (stands on soft 17), so any
		// non-bust final hand is 17-21 and any bust came from a hand
		// that was below 17 before the last card.
		value := dealer.Value()
		if value <= 21 && len(dealer) > 2 {
			assert.GreaterOrEqual(t, value, 17)
		}
		withoutLast := dealer[:len(dealer)-1]
		if len(dealer) > 2 {
			assert.Less(t, withoutLast.Value(), 17,
				"dealer hit on %s (%d)", withoutLast, withoutLast.Value())
		}
	}
}

func TestDealerStandsOnSoft17(t *testing.T) {
	shoe, err := deck.NewShoe(1, randutil.New(1))
	require.NoError(t, err)

	dealer := DealerPlay(shoe, hand("As6h"), nil)
	assert.Equal(t, hand("As6h"), dealer, "dealer must stand on soft 17")
}

func TestDealerDrawsToSeventeen(t *testing.T) {
	shoe, err := deck.NewShoe(1, randutil.New(1))
	require.NoError(t, err)

	dealer := DealerPlay(shoe, hand("2h3d"), nil)
	assert.GreaterOrEqual(t, dealer.Value(), 17)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		dealer  string
		outcome Outcome
	}{
		{"player higher", "ThKd", "Th9d", Win},
		{"dealer higher", "Th9d", "ThKd", Lose},
		{"equal values", "ThKd", "KsQc", Draw},
		{"multi-card 21 ties two-card 21", "5h6dKs", "AsKh", Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.outcome, Resolve(hand(tt.player), hand(tt.dealer)))
		})
	}
}

func TestNaturalResolution(t *testing.T) {
	// Drive enough seeded games to observe naturals and check they resolve
	// straight from the initial deal.
	game, err := New(Config{Decks: 1, Seed: 5})
	require.NoError(t, err)

	var decisions int
	var lastResult ResultEvent
	game.events = SinkFunc(func(event Event) {
		switch e := event.(type) {
		case DecisionEvent:
			decisions++
		case ResultEvent:
			lastResult = e
		}
	})

	sawNatural := false
	for i := 0; i < 2000; i++ {
		decisions = 0
		outcome, err := game.Play(hitBelow17)
		require.NoError(t, err)

		playerNatural := lastResult.PlayerHand.IsBlackjack() && len(lastResult.PlayerHand) == 2
		dealerNatural := lastResult.DealerHand.IsBlackjack() && len(lastResult.DealerHand) == 2

		if playerNatural || dealerNatural {
			sawNatural = true
			assert.Zero(t, decisions, "naturals must resolve before the player acts")
			switch {
			case playerNatural && dealerNatural:
				assert.Equal(t, Draw, outcome)
			case playerNatural:
				assert.Equal(t, Win, outcome)
			default:
				assert.Equal(t, Lose, outcome)
			}
		}
	}
	assert.True(t, sawNatural, "expected naturals within 2000 games")
}

func TestEventToggleDoesNotChangeOutcomes(t *testing.T) {
	const games = 200
	const seed = 1234

	play := func(sink EventSink) []Outcome {
		game, err := New(Config{Decks: 2, Seed: seed, Events: sink})
		require.NoError(t, err)

		outcomes := make([]Outcome, 0, games)
		for i := 0; i < games; i++ {
			outcome, err := game.Play(hitBelow17)
			require.NoError(t, err)
			outcomes = append(outcomes, outcome)
		}
		return outcomes
	}

	var events int
	silent := play(nil)
	observed := play(SinkFunc(func(Event) { events++ }))

	assert.Equal(t, silent, observed, "event sink must not affect outcomes")
	assert.Positive(t, events, "sink should have received events")
}

func TestResetRestoresShoe(t *testing.T) {
	game, err := New(Config{Decks: 1, Seed: 9})
	require.NoError(t, err)

	_, err = game.Play(hitBelow17)
	require.NoError(t, err)
	require.Less(t, game.Shoe().Remaining(), 52)

	game.Reset()
	assert.Equal(t, 52, game.Shoe().Remaining())
}

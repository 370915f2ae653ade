package simulator

import (
	"testing"

	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/cardroom/blackjack/internal/deck"
	"github.com/cardroom/blackjack/internal/strategy"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInvalidRuns(t *testing.T) {
	for _, runs := range []int{0, -5} {
		_, err := New(Config{Runs: runs, Decks: 1, Strategy: strategy.Basic{}}).Run()
		require.ErrorIs(t, err, ErrNoRuns)
	}
}

func TestRunInvalidDecks(t *testing.T) {
	_, err := New(Config{Runs: 10, Decks: 0, Strategy: strategy.Basic{}}).Run()
	require.ErrorIs(t, err, deck.ErrNoDecks)
}

func TestRunNilStrategy(t *testing.T) {
	_, err := New(Config{Runs: 10, Decks: 1}).Run()
	require.ErrorIs(t, err, blackjack.ErrNilStrategy)
}

func TestRunCountsSumToRuns(t *testing.T) {
	const runs = 10000

	stats, err := New(Config{
		Runs:     runs,
		Decks:    1,
		Seed:     42,
		Strategy: strategy.Basic{},
	}).Run()
	require.NoError(t, err)

	assert.Equal(t, runs, stats.Total())
	assert.GreaterOrEqual(t, stats.Wins, 0)
	assert.GreaterOrEqual(t, stats.Losses, 0)
	assert.GreaterOrEqual(t, stats.Draws, 0)
	require.NoError(t, stats.Validate(runs))

	counts := stats.Counts()
	assert.Equal(t, runs, counts["win"]+counts["lose"]+counts["draw"])
}

func TestRunSingleGame(t *testing.T) {
	stats, err := New(Config{Runs: 1, Decks: 1, Seed: 7, Strategy: strategy.Basic{}}).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total())
}

func TestRunDeterministicUnderSeed(t *testing.T) {
	run := func() map[string]int {
		stats, err := New(Config{Runs: 500, Decks: 2, Seed: 99, Strategy: strategy.Basic{}}).Run()
		require.NoError(t, err)
		return stats.Counts()
	}

	assert.Equal(t, run(), run(), "same seed must reproduce the same counts")
}

func TestRunParallel(t *testing.T) {
	const runs = 5000

	stats, err := New(Config{
		Runs:     runs,
		Decks:    1,
		Seed:     42,
		Workers:  4,
		Strategy: strategy.Basic{},
	}).Run()
	require.NoError(t, err)

	assert.Equal(t, runs, stats.Total())
	require.NoError(t, stats.Validate(runs))
}

func TestRunParallelDeterministicUnderSeed(t *testing.T) {
	run := func() map[string]int {
		stats, err := New(Config{Runs: 1000, Decks: 1, Seed: 7, Workers: 3, Strategy: strategy.Basic{}}).Run()
		require.NoError(t, err)
		return stats.Counts()
	}

	assert.Equal(t, run(), run())
}

func TestRunParallelMoreWorkersThanRuns(t *testing.T) {
	stats, err := New(Config{Runs: 3, Decks: 1, Seed: 1, Workers: 8, Strategy: strategy.Basic{}}).Run()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total())
}

func TestRunWithMockClock(t *testing.T) {
	clock := quartz.NewMock(t)

	stats, err := New(Config{
		Runs:     100,
		Decks:    1,
		Seed:     5,
		Strategy: strategy.Basic{},
		Clock:    clock,
	}).Run()
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Total())
}

func TestRunDegenerateStrategies(t *testing.T) {
	// Always-stand can never bust the player, so losses come only from
	// dealer showings; always-hit busts nearly every hand.
	stand, err := New(Config{Runs: 2000, Decks: 1, Seed: 3, Strategy: strategy.Stand{}}).Run()
	require.NoError(t, err)
	require.NoError(t, stand.Validate(2000))

	hit, err := New(Config{Runs: 2000, Decks: 1, Seed: 3, Strategy: strategy.Hit{}}).Run()
	require.NoError(t, err)
	require.NoError(t, hit.Validate(2000))

	assert.Greater(t, hit.Losses, stand.Losses, "always-hit should lose far more often")
}

func TestRunExperimentWrapper(t *testing.T) {
	stats, err := RunExperiment(50, 1, 11, strategy.Basic{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.Total())
}

// Package simulator runs bulk blackjack experiments against the game engine
// and aggregates outcome statistics.
package simulator

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/cardroom/blackjack/internal/randutil"
	"github.com/cardroom/blackjack/internal/statistics"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// ErrNoRuns is returned when an experiment is requested with fewer than one run
var ErrNoRuns = errors.New("experiment requires at least one run")

// progressInterval is how many runs elapse between progress log lines
const progressInterval = 10000

// Config holds configuration for running experiments
type Config struct {
	// Runs is the number of independent games to play (>= 1)
	Runs int

	// Decks is the shoe size multiplier passed to the engine (>= 1)
	Decks int

	// Seed seeds the experiment; 0 derives a seed from the clock. Worker
	// sub-streams are derived from it so parallel runs stay reproducible.
	Seed int64

	// Workers > 1 enables the parallel mode. Each worker owns an
	// independent game (its own shoe and random stream), so no locking
	// is needed around dealing.
	Workers int

	// Strategy decides the player's actions for every game
	Strategy blackjack.Strategy

	// Logger receives progress reporting; nil discards it
	Logger *log.Logger

	// Clock is used for elapsed-time reporting; nil uses the real clock
	Clock quartz.Clock
}

// Simulator runs blackjack experiments
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays the configured number of games and returns aggregated outcome
// counts. Configuration errors surface before any game is played; a
// returned Stats always satisfies wins+losses+draws == runs.
func (s *Simulator) Run() (*statistics.Stats, error) {
	if s.config.Runs < 1 {
		return nil, ErrNoRuns
	}
	if s.config.Strategy == nil {
		return nil, blackjack.ErrNilStrategy
	}

	cfg := s.config
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Probe the engine configuration up front so a bad deck count fails
	// before any games run, in sequential and parallel mode alike.
	if _, err := blackjack.New(blackjack.Config{Decks: cfg.Decks, Seed: cfg.Seed}); err != nil {
		return nil, err
	}

	var stats *statistics.Stats
	var err error
	start := cfg.Clock.Now()

	if cfg.Workers > 1 {
		stats, err = runParallel(cfg)
	} else {
		stats, err = runSequential(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := stats.Validate(cfg.Runs); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	cfg.Logger.Info("Experiment complete",
		"runs", cfg.Runs,
		"elapsed", cfg.Clock.Since(start).Round(time.Millisecond),
		"winRate", fmt.Sprintf("%.4f", stats.Rate(blackjack.Win)))

	return stats, nil
}

func runSequential(cfg Config) (*statistics.Stats, error) {
	game, err := blackjack.New(blackjack.Config{Decks: cfg.Decks, Seed: cfg.Seed})
	if err != nil {
		return nil, err
	}

	stats := &statistics.Stats{}
	start := cfg.Clock.Now()

	for run := 0; run < cfg.Runs; run++ {
		outcome, err := game.Play(cfg.Strategy)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", run+1, err)
		}
		stats.Add(outcome)

		if (run+1)%progressInterval == 0 {
			elapsed := cfg.Clock.Since(start)
			cfg.Logger.Debug("Experiment progress",
				"completed", run+1,
				"total", cfg.Runs,
				"gamesPerSec", fmt.Sprintf("%.0f", float64(run+1)/elapsed.Seconds()))
		}
	}

	return stats, nil
}

func runParallel(cfg Config) (*statistics.Stats, error) {
	workers := cfg.Workers
	if workers > cfg.Runs {
		workers = cfg.Runs
	}

	results := make([]statistics.Stats, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		runs := cfg.Runs / workers
		if w < cfg.Runs%workers {
			runs++
		}

		seed := randutil.Derive(cfg.Seed, w)
		worker := w
		workerRuns := runs

		g.Go(func() error {
			game, err := blackjack.New(blackjack.Config{Decks: cfg.Decks, Seed: seed})
			if err != nil {
				return err
			}

			for run := 0; run < workerRuns; run++ {
				outcome, err := game.Play(cfg.Strategy)
				if err != nil {
					return fmt.Errorf("worker %d run %d: %w", worker, run+1, err)
				}
				results[worker].Add(outcome)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Stats{}
	for _, r := range results {
		stats.Wins += r.Wins
		stats.Losses += r.Losses
		stats.Draws += r.Draws
	}
	return stats, nil
}

// RunExperiment is a convenience wrapper for a sequential experiment with
// basic parameters
func RunExperiment(runs, decks int, seed int64, strategy blackjack.Strategy, logger *log.Logger) (*statistics.Stats, error) {
	return New(Config{
		Runs:     runs,
		Decks:    decks,
		Seed:     seed,
		Strategy: strategy,
		Logger:   logger,
	}).Run()
}

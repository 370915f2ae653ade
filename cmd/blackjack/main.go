package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/cardroom/blackjack/internal/deck"
	"github.com/cardroom/blackjack/internal/randutil"
	"github.com/cardroom/blackjack/internal/simulator"
	"github.com/cardroom/blackjack/internal/strategy"
	"github.com/cardroom/blackjack/internal/tui"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

type CLI struct {
	Decks        int    `default:"1" help:"Number of card decks in the shoe"`
	Runs         int    `default:"1" help:"Number of games to run (>1 selects experiment mode)"`
	Seed         int64  `default:"0" help:"RNG seed (0 for random)"`
	Strategy     string `default:"basic" enum:"basic,stand,hit,chart" help:"Player strategy: basic, stand, hit, chart"`
	StrategyFile string `optional:"" type:"existingfile" help:"HCL chart strategy file (overrides --strategy)"`
	Workers      int    `default:"1" help:"Parallel experiment workers (each owns its own shoe)"`
	NoLog        bool   `help:"Disable per-action game logging"`
	Interactive  bool   `short:"i" help:"Play hands interactively in the terminal"`
	Verbose      bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Simulate blackjack against a fixed-policy dealer with pluggable strategies"),
		kong.UsageOnError(),
	)

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	playerStrategy, err := loadStrategy(cli)
	ctx.FatalIfErrorf(err)

	switch {
	case cli.Interactive:
		err = runInteractive(cli)
	case cli.Runs > 1:
		err = runExperiment(cli, playerStrategy, logger)
	default:
		err = runSingleGame(cli, playerStrategy, logger)
	}
	ctx.FatalIfErrorf(err)
}

func loadStrategy(cli CLI) (blackjack.Strategy, error) {
	if cli.StrategyFile != "" {
		return strategy.LoadChart(cli.StrategyFile)
	}
	return strategy.New(cli.Strategy)
}

func runSingleGame(cli CLI, playerStrategy blackjack.Strategy, logger *log.Logger) error {
	var events blackjack.EventSink
	if !cli.NoLog {
		events = blackjack.NewLogSink(logger)
	}

	game, err := blackjack.New(blackjack.Config{
		Decks:  cli.Decks,
		Seed:   cli.Seed,
		Events: events,
	})
	if err != nil {
		return err
	}

	outcome, err := game.Play(playerStrategy)
	if err != nil {
		return err
	}

	fmt.Printf("Game result: %s\n", outcome)
	return nil
}

func runExperiment(cli CLI, playerStrategy blackjack.Strategy, logger *log.Logger) error {
	logger.Info("Starting experiment",
		"runs", cli.Runs, "decks", cli.Decks, "seed", cli.Seed, "workers", cli.Workers)

	stats, err := simulator.New(simulator.Config{
		Runs:     cli.Runs,
		Decks:    cli.Decks,
		Seed:     cli.Seed,
		Workers:  cli.Workers,
		Strategy: playerStrategy,
		Logger:   logger,
	}).Run()
	if err != nil {
		return err
	}

	if termenv.ColorProfile() == termenv.Ascii {
		counts := stats.Counts()
		fmt.Printf("Ran %d games with %d deck(s).\n", stats.Total(), cli.Decks)
		fmt.Printf("Wins: %d | Losses: %d | Draws: %d\n", counts["win"], counts["lose"], counts["draw"])
		return nil
	}

	fmt.Println(stats.Summary())
	return nil
}

func runInteractive(cli CLI) error {
	shoe, err := deck.NewShoe(cli.Decks, randutil.New(cli.Seed))
	if err != nil {
		return err
	}
	return tui.Run(shoe)
}

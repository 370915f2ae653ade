// Package statistics aggregates game outcomes across an experiment.
package statistics

import (
	"fmt"
	"strings"

	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/charmbracelet/lipgloss"
)

// Stats tracks win/lose/draw counts over a batch of games. Counts only ever
// increase; a completed experiment's stats are never mutated afterwards.
type Stats struct {
	Wins   int
	Losses int
	Draws  int
}

// Add incorporates one completed game outcome
func (s *Stats) Add(outcome blackjack.Outcome) {
	switch outcome {
	case blackjack.Win:
		s.Wins++
	case blackjack.Lose:
		s.Losses++
	case blackjack.Draw:
		s.Draws++
	}
}

// Total returns the number of games recorded
func (s *Stats) Total() int {
	return s.Wins + s.Losses + s.Draws
}

// Rate returns the fraction of games with the given outcome
func (s *Stats) Rate(outcome blackjack.Outcome) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	switch outcome {
	case blackjack.Win:
		return float64(s.Wins) / float64(total)
	case blackjack.Lose:
		return float64(s.Losses) / float64(total)
	case blackjack.Draw:
		return float64(s.Draws) / float64(total)
	default:
		return 0
	}
}

// Counts returns the boundary mapping from outcome label to count
func (s *Stats) Counts() map[string]int {
	return map[string]int{
		blackjack.Win.String():  s.Wins,
		blackjack.Lose.String(): s.Losses,
		blackjack.Draw.String(): s.Draws,
	}
}

// Validate checks the experiment guarantee that every run produced exactly
// one outcome
func (s *Stats) Validate(runs int) error {
	if s.Wins < 0 || s.Losses < 0 || s.Draws < 0 {
		return fmt.Errorf("negative outcome count: wins=%d losses=%d draws=%d",
			s.Wins, s.Losses, s.Draws)
	}
	if total := s.Total(); total != runs {
		return fmt.Errorf("outcome counts sum to %d, expected %d runs", total, runs)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	drawStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true)
)

// Summary renders a styled results block for terminal output
func (s *Stats) Summary() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Results over %d games", s.Total())))
	b.WriteString("\n")
	b.WriteString(winStyle.Render(fmt.Sprintf("  wins:   %d (%.2f%%)", s.Wins, s.Rate(blackjack.Win)*100)))
	b.WriteString("\n")
	b.WriteString(loseStyle.Render(fmt.Sprintf("  losses: %d (%.2f%%)", s.Losses, s.Rate(blackjack.Lose)*100)))
	b.WriteString("\n")
	b.WriteString(drawStyle.Render(fmt.Sprintf("  draws:  %d (%.2f%%)", s.Draws, s.Rate(blackjack.Draw)*100)))

	return b.String()
}

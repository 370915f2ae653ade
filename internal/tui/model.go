// Package tui provides an interactive terminal mode where a human plays the
// hands instead of a strategy. The model drives the shoe and the fixed
// dealer policy directly through the engine's stepwise helpers, so the
// Strategy interface stays reserved for pure decision functions.
package tui

import (
	"fmt"
	"strings"

	"github.com/cardroom/blackjack/internal/blackjack"
	"github.com/cardroom/blackjack/internal/deck"
	"github.com/cardroom/blackjack/internal/statistics"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type phase int

const (
	phasePlayerTurn phase = iota
	phaseDone
)

// Model is the Bubble Tea model for interactive play
type Model struct {
	shoe   *deck.Shoe
	player blackjack.Hand
	dealer blackjack.Hand

	phase   phase
	outcome blackjack.Outcome
	stats   statistics.Stats

	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel creates an interactive session dealing from the given shoe
func NewModel(shoe *deck.Shoe) Model {
	m := Model{
		shoe: shoe,
		keys: newKeyMap(),
		help: help.New(),
	}
	m.dealHand()
	return m
}

// dealHand starts a fresh hand from the current shoe
func (m *Model) dealHand() {
	m.player = blackjack.Hand{m.shoe.Deal(), m.shoe.Deal()}
	m.dealer = blackjack.Hand{m.shoe.Deal(), m.shoe.Deal()}
	m.phase = phasePlayerTurn

	if m.player.IsBlackjack() || m.dealer.IsBlackjack() {
		switch {
		case m.player.IsBlackjack() && m.dealer.IsBlackjack():
			m.finish(blackjack.Draw)
		case m.player.IsBlackjack():
			m.finish(blackjack.Win)
		default:
			m.finish(blackjack.Lose)
		}
	}
}

func (m *Model) finish(outcome blackjack.Outcome) {
	m.outcome = outcome
	m.phase = phaseDone
	m.stats.Add(outcome)
}

func (m *Model) hit() {
	m.player = m.player.Add(m.shoe.Deal())
	if m.player.IsBust() {
		m.finish(blackjack.Lose)
	}
}

func (m *Model) stand() {
	m.dealer = blackjack.DealerPlay(m.shoe, m.dealer, nil)
	if m.dealer.IsBust() {
		m.finish(blackjack.Win)
		return
	}
	m.finish(blackjack.Resolve(m.player, m.dealer))
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Hit):
			if m.phase == phasePlayerTurn {
				m.hit()
			}

		case key.Matches(msg, m.keys.Stand):
			if m.phase == phasePlayerTurn {
				m.stand()
			}

		case key.Matches(msg, m.keys.Next):
			if m.phase == phaseDone {
				m.dealHand()
			}
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return m.stats.Summary() + "\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Blackjack"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Dealer: "))
	if m.phase == phasePlayerTurn {
		b.WriteString(renderCard(m.dealer[0]))
		b.WriteString(" ")
		b.WriteString(hiddenCardStyle.Render("🂠"))
	} else {
		b.WriteString(renderHand(m.dealer))
		b.WriteString(infoStyle.Render(fmt.Sprintf("  (%d)", m.dealer.Value())))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("You:    "))
	b.WriteString(renderHand(m.player))
	b.WriteString(infoStyle.Render(fmt.Sprintf("  (%d)", m.player.Value())))
	b.WriteString("\n\n")

	if m.phase == phaseDone {
		b.WriteString(renderOutcome(m.outcome))
		b.WriteString("\n")
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("W %d / L %d / D %d  ·  %d cards left in shoe",
		m.stats.Wins, m.stats.Losses, m.stats.Draws, m.shoe.Remaining())))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func renderHand(hand blackjack.Hand) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = renderCard(card)
	}
	return strings.Join(parts, " ")
}

func renderCard(card deck.Card) string {
	if card.IsRed() {
		return redCardStyle.Render(card.String())
	}
	return blackCardStyle.Render(card.String())
}

func renderOutcome(outcome blackjack.Outcome) string {
	switch outcome {
	case blackjack.Win:
		return winStyle.Render("You win!")
	case blackjack.Lose:
		return loseStyle.Render("You lose.")
	default:
		return drawStyle.Render("Push.")
	}
}

// Run plays interactive hands from the shoe until the user quits
func Run(shoe *deck.Shoe) error {
	_, err := tea.NewProgram(NewModel(shoe)).Run()
	return err
}

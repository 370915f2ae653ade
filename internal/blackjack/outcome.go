package blackjack

import "fmt"

// Outcome is the result of one completed game from the player's side
type Outcome int

const (
	Win Outcome = iota
	Lose
	Draw
)

// String returns the boundary representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// MarshalText serializes the outcome to its literal string form
func (o Outcome) MarshalText() ([]byte, error) {
	if o < Win || o > Draw {
		return nil, fmt.Errorf("invalid outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

// ParseOutcome converts a literal outcome string back to an Outcome
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "win":
		return Win, nil
	case "lose":
		return Lose, nil
	case "draw":
		return Draw, nil
	default:
		return 0, fmt.Errorf("invalid outcome %q", s)
	}
}

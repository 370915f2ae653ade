package blackjack

import (
	"time"

	"github.com/cardroom/blackjack/internal/deck"
	"github.com/charmbracelet/log"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeDeal     EventType = "deal"
	EventTypeDecision EventType = "decision"
	EventTypeResult   EventType = "result"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Participant identifies which side of the table an event concerns
type Participant string

const (
	ParticipantPlayer Participant = "player"
	ParticipantDealer Participant = "dealer"
)

// Event is any observable game occurrence. Events exist purely for
// observability: whether a sink is attached never changes game outcomes.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// DealEvent is emitted every time a card leaves the shoe
type DealEvent struct {
	To        Participant
	Card      deck.Card
	Hand      Hand // hand after the card was added
	Hidden    bool // dealer hole card, not visible during the player turn
	timestamp time.Time
}

func (e DealEvent) EventType() EventType { return EventTypeDeal }
func (e DealEvent) Timestamp() time.Time { return e.timestamp }

// DecisionEvent is emitted for every strategy decision during the player turn
type DecisionEvent struct {
	Hand      Hand
	Upcard    deck.Card
	Hit       bool
	timestamp time.Time
}

func (e DecisionEvent) EventType() EventType { return EventTypeDecision }
func (e DecisionEvent) Timestamp() time.Time { return e.timestamp }

// ResultEvent is emitted once when a game resolves
type ResultEvent struct {
	PlayerHand Hand
	DealerHand Hand
	Outcome    Outcome
	timestamp  time.Time
}

func (e ResultEvent) EventType() EventType { return EventTypeResult }
func (e ResultEvent) Timestamp() time.Time { return e.timestamp }

// EventSink receives game events as they occur
type EventSink interface {
	HandleEvent(event Event)
}

// SinkFunc adapts a function to the EventSink interface
type SinkFunc func(event Event)

// HandleEvent calls the wrapped function
func (f SinkFunc) HandleEvent(event Event) {
	f(event)
}

// LogSink forwards game events to a structured logger
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates an EventSink that logs each event
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// HandleEvent logs the event with key/value context
func (s *LogSink) HandleEvent(event Event) {
	switch e := event.(type) {
	case DealEvent:
		if e.Hidden {
			s.logger.Info("Card dealt", "to", e.To, "card", "?", "hand", e.Hand[:len(e.Hand)-1].String()+" ?")
			return
		}
		s.logger.Info("Card dealt", "to", e.To, "card", e.Card, "hand", e.Hand, "value", e.Hand.Value())
	case DecisionEvent:
		action := "stand"
		if e.Hit {
			action = "hit"
		}
		s.logger.Info("Player decision", "action", action, "hand", e.Hand, "value", e.Hand.Value(), "upcard", e.Upcard)
	case ResultEvent:
		s.logger.Info("Game over", "outcome", e.Outcome,
			"player", e.PlayerHand, "playerValue", e.PlayerHand.Value(),
			"dealer", e.DealerHand, "dealerValue", e.DealerHand.Value())
	}
}

package bluff

import (
	"context"
	"log/slog"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

// EventKind names what happened.
type EventKind string

const (
	EventRoundStarted     EventKind = "round-started"
	EventHandShown        EventKind = "hand-shown"
	EventPlayMade         EventKind = "play-made"
	EventQuestionDeclined EventKind = "question-declined"
	EventQuestionRaised   EventKind = "question-raised"
	EventCardsRevealed    EventKind = "cards-revealed"
	EventResolution       EventKind = "resolution"
	EventBombOutcome      EventKind = "bomb-outcome"
	EventRoundEnded       EventKind = "round-ended"
	EventGameWinner       EventKind = "game-winner"
)

// Event is a structured notification for the calling layer. Fields that do
// not apply to a kind are left at their zero value; player indices that do
// not apply are NoPlayer.
type Event struct {
	Kind  EventKind
	Round int
	Focus deck.Card

	Player     int // subject: who played, whose hand, who won
	Questioner int
	Accused    int
	AtRisk     int

	Count int         // cards played; the only thing disclosed on a play
	Cards []deck.Card // hand for hand-shown, revealed play for cards-revealed

	Correct   bool // resolution: the questioned play was honest
	Died      bool
	ThirdBomb bool // death was forced by the survival counter
	Forced    bool // question-raised: forced questioning
	NoRecord  bool // cards-revealed: the accused had no pending play
	Survivals int  // bomb-outcome: counter after the check
}

func newEvent(kind EventKind) Event {
	return Event{
		Kind:       kind,
		Player:     NoPlayer,
		Questioner: NoPlayer,
		Accused:    NoPlayer,
		AtRisk:     NoPlayer,
	}
}

// EventSink receives events in the order they happen.
type EventSink interface {
	Handle(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

func (f SinkFunc) Handle(e Event) { f(e) }

// MultiSink forwards every event to each sink in order.
type MultiSink []EventSink

func (m MultiSink) Handle(e Event) {
	for _, s := range m {
		s.Handle(e)
	}
}

type discardSink struct{}

func (discardSink) Handle(Event) {}

// LogSink writes events to a structured logger. The winner is logged at info
// level, everything else at debug.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Handle(e Event) {
	level := slog.LevelDebug
	if e.Kind == EventGameWinner {
		level = slog.LevelInfo
	}
	s.logger.LogAttrs(context.Background(), level, string(e.Kind), e.attrs()...)
}

func (e Event) attrs() []slog.Attr {
	attrs := []slog.Attr{slog.Int("round", e.Round)}
	if e.Kind != EventGameWinner {
		attrs = append(attrs, slog.String("focus", e.Focus.String()))
	}
	addIdx := func(key string, idx int) {
		if idx != NoPlayer {
			attrs = append(attrs, slog.Int(key, idx))
		}
	}
	addIdx("player", e.Player)
	addIdx("questioner", e.Questioner)
	addIdx("accused", e.Accused)
	addIdx("at_risk", e.AtRisk)

	// Hands never reach the log.
	switch e.Kind {
	case EventPlayMade:
		attrs = append(attrs, slog.Int("count", e.Count))
	case EventQuestionRaised:
		attrs = append(attrs, slog.Bool("forced", e.Forced))
	case EventCardsRevealed:
		attrs = append(attrs, slog.String("cards", deck.Format(e.Cards)), slog.Bool("no_record", e.NoRecord))
	case EventResolution:
		attrs = append(attrs, slog.Bool("correct", e.Correct))
	case EventBombOutcome:
		attrs = append(attrs, slog.Bool("died", e.Died), slog.Bool("third_bomb", e.ThirdBomb), slog.Int("survivals", e.Survivals))
	}
	return attrs
}

package bluff

import (
	"testing"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

// scriptedRand returns the queued values from IntN and leaves shuffles as
// the identity permutation.
type scriptedRand struct {
	t        *testing.T
	ints     []int
	pos      int
	shuffles int
}

func script(t *testing.T, ints ...int) *scriptedRand {
	return &scriptedRand{t: t, ints: ints}
}

func (s *scriptedRand) IntN(n int) int {
	s.t.Helper()
	if s.pos >= len(s.ints) {
		s.t.Fatalf("scripted source exhausted after %d draws (IntN(%d))", s.pos, n)
	}
	v := s.ints[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range for IntN(%d)", v, n)
	}
	return v
}

func (s *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	s.shuffles++
}

func (s *scriptedRand) drained() bool {
	return s.pos == len(s.ints)
}

type recordingSink struct {
	events []Event
}

func (r *recordingSink) Handle(e Event) {
	r.events = append(r.events, e)
}

func (r *recordingSink) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recordingSink) find(kind EventKind) (Event, bool) {
	for _, e := range r.events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

// scriptedMover plays the given positions on each human turn.
type scriptedMover struct {
	moves [][]int
	calls int
}

func (m *scriptedMover) ChooseMoveCount(hand []deck.Card) (int, error) {
	return len(m.moves[m.calls]), nil
}

func (m *scriptedMover) ChooseCardPositions(hand []deck.Card, count int) ([]int, error) {
	move := m.moves[m.calls]
	m.calls++
	return move, nil
}

// firstCardMover always plays the first card of the hand.
type firstCardMover struct{}

func (firstCardMover) ChooseMoveCount(hand []deck.Card) (int, error) { return 1, nil }

func (firstCardMover) ChooseCardPositions(hand []deck.Card, count int) ([]int, error) {
	return []int{0}, nil
}

type fixedDecider struct {
	answer bool
	asked  int
}

func (d *fixedDecider) DecideToQuestion(accused Player, count int) (bool, error) {
	d.asked++
	return d.answer, nil
}

// failDecider fails the test when consulted.
type failDecider struct {
	t *testing.T
}

func (d failDecider) DecideToQuestion(accused Player, count int) (bool, error) {
	d.t.Fatalf("question decider consulted about %s", accused.Name)
	return false, nil
}

func fourBots() []Seat {
	return []Seat{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
}

// newTestGame builds a game whose starting player is fixed, so no draw is
// consumed before the scenario starts.
func newTestGame(t *testing.T, seats []Seat, rng *scriptedRand, opts ...option) (*Game, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts = append([]option{WithStartingPlayer(0), WithSink(sink)}, opts...)
	g, err := NewGame(seats, rng, opts...)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g, sink
}

// setRound installs a round without dealing or drawing.
func setRound(g *Game, number int, focus deck.Card, active int) {
	g.round = RoundState{Number: number, Focus: focus, Active: active}
}

func setHands(g *Game, hands ...[]deck.Card) {
	for i, h := range hands {
		g.registry.Player(i).Hand = h
	}
}

func cards(c ...deck.Card) []deck.Card {
	return c
}

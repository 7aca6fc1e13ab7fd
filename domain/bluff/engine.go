package bluff

import (
	"context"
	"fmt"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/random"
)

// MoveProvider supplies the moves of a human seat. Both methods must return
// values that pass ValidateCount and ValidatePositions; re-prompting on bad
// input is the provider's job.
type MoveProvider interface {
	ChooseMoveCount(hand []deck.Card) (int, error)
	ChooseCardPositions(hand []deck.Card, count int) ([]int, error)
}

// QuestionDecider asks a human seat whether to question the previous play.
// Only the number of cards played is disclosed.
type QuestionDecider interface {
	DecideToQuestion(accused Player, count int) (bool, error)
}

// Game is a single in-memory session. It is not safe for concurrent use:
// the engine is the only writer and runs one turn at a time.
type Game struct {
	registry *Registry
	pending  *pendingStore
	survival *survivalTracker
	resolver *resolver
	deck     *deck.Deck
	round    RoundState
	rng      random.Source
	bot      botPolicy
	phase    Phase

	handSize int
	start    int

	mover   MoveProvider
	decider QuestionDecider
	sink    EventSink

	onPhaseChange func(old, new Phase)
}

type option func(Game) Game

// WithMoveProvider sets where human moves come from.
func WithMoveProvider(m MoveProvider) option {
	return func(g Game) Game {
		g.mover = m
		return g
	}
}

// WithQuestionDecider sets where human questioning decisions come from.
func WithQuestionDecider(q QuestionDecider) option {
	return func(g Game) Game {
		g.decider = q
		return g
	}
}

// WithSink sets the event sink. Events are discarded by default.
func WithSink(s EventSink) option {
	return func(g Game) Game {
		g.sink = s
		return g
	}
}

// WithHandSize overrides the number of cards dealt each round.
func WithHandSize(n int) option {
	return func(g Game) Game {
		g.handSize = n
		return g
	}
}

// WithStartingPlayer fixes the first player instead of drawing one.
func WithStartingPlayer(idx int) option {
	return func(g Game) Game {
		g.start = idx
		return g
	}
}

// WithPhaseHook registers a callback invoked on every phase transition.
func WithPhaseHook(f func(old, new Phase)) option {
	return func(g Game) Game {
		g.onPhaseChange = f
		return g
	}
}

// NewGame seats the players and draws the starting player from rng unless
// one is fixed with WithStartingPlayer. All randomness of the game comes
// from rng, in a fixed order, so a seeded source replays the same game.
func NewGame(seats []Seat, rng random.Source, opts ...option) (*Game, error) {
	if len(seats) < 2 {
		return nil, ErrNoPlayers
	}
	g := Game{
		handSize: DefaultHandSize,
		start:    NoPlayer,
		sink:     discardSink{},
		phase:    PhaseIdle,
	}
	for _, opt := range opts {
		g = opt(g)
	}
	for _, s := range seats {
		if s.Controller == Human && (g.mover == nil || g.decider == nil) {
			return nil, fmt.Errorf("seat %q: %w", s.Name, ErrMissingProvider)
		}
	}
	if g.handSize < 1 {
		return nil, fmt.Errorf("hand size must be positive, got %d", g.handSize)
	}
	if g.start < NoPlayer || g.start >= len(seats) {
		return nil, fmt.Errorf("starting player %d out of range", g.start)
	}

	g.rng = rng
	g.bot = botPolicy{rng: rng}
	g.registry = NewRegistry(seats)
	g.pending = newPendingStore(len(seats))
	g.survival = newSurvivalTracker(g.registry, rng, g.emit)
	g.resolver = &resolver{
		registry: g.registry,
		pending:  g.pending,
		survival: g.survival,
		emit:     g.emit,
	}
	if g.start == NoPlayer {
		g.start = rng.IntN(len(seats))
	}
	g.round = RoundState{Active: g.start}
	return &g, nil
}

// Registry exposes the seated players.
func (g *Game) Registry() *Registry {
	return g.registry
}

// Round returns the current round state.
func (g *Game) Round() RoundState {
	return g.round
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Survivals returns the survival counter of the player at idx.
func (g *Game) Survivals(idx int) int {
	g.registry.Player(idx)
	return g.survival.counter(idx)
}

// Play runs the game to the end and returns its result. ctx is checked
// between turns; a human collaborator blocking on input is not interrupted.
func (g *Game) Play(ctx context.Context) (Result, error) {
	g.StartRound()
	return g.run(ctx)
}

func (g *Game) run(ctx context.Context) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("round %d: %w", g.round.Number, err)
		}
		over, err := g.Step()
		if err != nil {
			return Result{}, fmt.Errorf("round %d: %w", g.round.Number, err)
		}
		if !over {
			continue
		}
		if !g.EndRound() {
			return g.finish(), nil
		}
		g.StartRound()
	}
}

// StartRound re-deals from a full deck and draws the round's focus card.
// The active pointer carries over from the previous round.
func (g *Game) StartRound() {
	g.setPhase(PhaseRoundStart)
	if g.deck == nil {
		g.deck = deck.New(g.rng)
	} else {
		g.deck.Reset()
	}
	g.registry.Deal(g.deck, g.handSize)
	g.pending.clear()

	focus := deck.FocusCards()
	g.round = RoundState{
		Number: g.round.Number + 1,
		Focus:  focus[g.rng.IntN(len(focus))],
		Active: g.round.Active,
	}

	e := newEvent(EventRoundStarted)
	e.Player = g.round.Active
	g.emit(e)
	for _, p := range g.registry.players {
		if p.IsHuman() && p.Alive {
			g.showHand(p.Index)
		}
	}
}

// EndRound closes the round and reports whether the game goes on, that is
// whether more than one player is alive and still holds cards.
func (g *Game) EndRound() bool {
	g.setPhase(PhaseRoundEnd)
	e := newEvent(EventRoundEnded)
	e.Player = g.round.Active
	g.emit(e)
	return g.registry.CountAliveWithCards() > 1
}

// Step plays one turn and reports whether the round is over.
func (g *Game) Step() (bool, error) {
	g.setPhase(PhasePlayerTurn)
	if g.registry.CountAliveWithCards() <= 1 {
		return true, nil
	}

	actor := g.round.Active
	if !g.registry.Player(actor).CanAct() {
		next := g.registry.NextAliveWithCards(actor)
		if next == NoPlayer {
			return true, nil
		}
		actor = next
		g.round.Active = actor
	}

	p := g.registry.Player(actor)
	if !p.CanAct() {
		panic(fmt.Sprintf("bluff: player %d cannot act at the start of their turn", actor))
	}

	played, err := g.takeTurn(p)
	if err != nil {
		return false, fmt.Errorf("turn of %s: %w", p.Name, err)
	}
	g.pending.record(actor, played)

	e := newEvent(EventPlayMade)
	e.Player = actor
	e.Count = len(played)
	g.emit(e)

	next := g.registry.NextAliveWithCards(actor)
	if next == NoPlayer || next == actor {
		return true, nil
	}

	if g.forcedQuestion(actor) {
		g.setPhase(PhaseForcedQuestion)
		g.question(next, actor, true)
		return true, nil
	}

	g.setPhase(PhaseVoluntaryQuestion)
	ask, err := g.wantsToQuestion(next, actor)
	if err != nil {
		return false, fmt.Errorf("question decision of %s: %w", g.registry.Player(next).Name, err)
	}
	if ask {
		g.question(next, actor, false)
		return true, nil
	}
	declined := newEvent(EventQuestionDeclined)
	declined.Player = next
	declined.Accused = actor
	g.emit(declined)

	g.setPhase(PhaseAdvanceTurn)
	g.round.Active = next
	return false, nil
}

// takeTurn collects the cards the player puts down and removes them from
// their hand.
func (g *Game) takeTurn(p *Player) ([]deck.Card, error) {
	if !p.IsHuman() {
		played, rest := g.bot.play(p.Hand)
		p.Hand = rest
		return played, nil
	}

	g.showHand(p.Index)
	hand := append([]deck.Card(nil), p.Hand...)
	k, err := g.mover.ChooseMoveCount(hand)
	if err != nil {
		return nil, err
	}
	if err := ValidateCount(k, len(hand)); err != nil {
		panic(fmt.Sprintf("bluff: move provider returned %v", err))
	}
	positions, err := g.mover.ChooseCardPositions(hand, k)
	if err != nil {
		return nil, err
	}
	if err := ValidatePositions(positions, len(hand), k); err != nil {
		panic(fmt.Sprintf("bluff: move provider returned %v", err))
	}
	played, rest := takePositions(p.Hand, positions)
	p.Hand = rest
	return played, nil
}

// forcedQuestion reports whether the next player must question actor: no
// question yet this round, only two players alive and actor just emptied
// their hand.
func (g *Game) forcedQuestion(actor int) bool {
	return !g.round.Questioned &&
		g.registry.CountAlive() == 2 &&
		!g.registry.Player(actor).HasCards()
}

// wantsToQuestion asks the next player's controller whether to question the
// actor. A human is only asked about a bot's play.
func (g *Game) wantsToQuestion(next, actor int) (bool, error) {
	q := g.registry.Player(next)
	if !q.IsHuman() {
		return g.bot.question(), nil
	}
	accused := g.registry.Player(actor)
	if accused.IsHuman() {
		return false, nil
	}
	return g.decider.DecideToQuestion(*accused, g.pending.count(actor))
}

// question resolves a challenge of questioner against accused and hands the
// lead of the next round to the questioner.
func (g *Game) question(questioner, accused int, forced bool) Outcome {
	g.round.Questioned = true
	e := newEvent(EventQuestionRaised)
	e.Player = questioner
	e.Questioner = questioner
	e.Accused = accused
	e.Forced = forced
	g.emit(e)

	g.setPhase(PhaseResolution)
	out := g.resolver.resolve(questioner, accused, g.round.Focus)
	g.round.Active = out.NextLeader
	return out
}

func (g *Game) finish() Result {
	g.setPhase(PhaseGameEnd)
	winner := g.registry.Winner()
	res := Result{
		Winner:    winner,
		Rounds:    g.round.Number,
		Survivals: g.survival.snapshot(),
	}
	if winner != NoPlayer {
		res.WinnerName = g.registry.Player(winner).Name
	}
	e := newEvent(EventGameWinner)
	e.Player = winner
	g.emit(e)
	return res
}

func (g *Game) showHand(idx int) {
	e := newEvent(EventHandShown)
	e.Player = idx
	e.Cards = append([]deck.Card(nil), g.registry.Player(idx).Hand...)
	g.emit(e)
}

// emit stamps the round and focus on e and hands it to the sink.
func (g *Game) emit(e Event) {
	e.Round = g.round.Number
	e.Focus = g.round.Focus
	g.sink.Handle(e)
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	old := g.phase
	g.phase = p
	if g.onPhaseChange != nil {
		g.onPhaseChange(old, p)
	}
}

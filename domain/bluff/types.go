package bluff

import (
	"errors"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

// NoPlayer is returned by the registry scans when no player qualifies.
const NoPlayer = -1

// Game constants.
const (
	DefaultHandSize = 5
	MinPlay         = 1
	MaxPlay         = 3
	// BotQuestionPercent is the chance a bot questions the previous play.
	BotQuestionPercent = 30
	// BombOdds is the denominator of the bomb check: death on 1 in BombOdds.
	BombOdds = 3
	// SafeSurvivals is how many bomb checks a player can survive in a row;
	// the next one always kills.
	SafeSurvivals = 2
)

var (
	ErrNoPlayers       = errors.New("at least two players are required")
	ErrMissingProvider = errors.New("human seat without move provider or question decider")
)

// Controller selects where a player's moves come from.
type Controller uint8

const (
	Bot Controller = iota
	Human
)

func (c Controller) String() string {
	if c == Human {
		return "human"
	}
	return "bot"
}

// Seat describes a player before the game starts.
type Seat struct {
	Name       string
	Controller Controller
}

// Player is a seated player. Index is stable for the whole game.
type Player struct {
	Name       string
	Index      int
	Controller Controller
	Alive      bool
	Hand       []deck.Card
}

// HasCards reports whether the player holds at least one card.
func (p Player) HasCards() bool {
	return len(p.Hand) > 0
}

// IsHuman reports whether the player's moves come from the human collaborators.
func (p Player) IsHuman() bool {
	return p.Controller == Human
}

// CanAct reports whether the player can take a turn.
func (p Player) CanAct() bool {
	return p.Alive && p.HasCards()
}

// RoundState is replaced wholesale at the start of every round.
type RoundState struct {
	Number     int
	Focus      deck.Card
	Active     int  // index of the player whose turn it is
	Questioned bool // a question was raised this round
}

// Phase is the position of the engine in the round/turn state machine.
type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseRoundStart        Phase = "round_start"
	PhasePlayerTurn        Phase = "player_turn"
	PhaseVoluntaryQuestion Phase = "voluntary_question"
	PhaseForcedQuestion    Phase = "forced_question"
	PhaseResolution        Phase = "resolution"
	PhaseAdvanceTurn       Phase = "advance_turn"
	PhaseRoundEnd          Phase = "round_end"
	PhaseGameEnd           Phase = "game_end"
)

// Result summarizes a finished game.
type Result struct {
	Winner     int
	WinnerName string
	Rounds     int
	Survivals  []int
}

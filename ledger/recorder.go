package ledger

import (
	"fmt"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/bluff"
)

type resolutionPayload struct {
	Focus      string `json:"focus"`
	Questioner int    `json:"questioner"`
	Accused    int    `json:"accused"`
	AtRisk     int    `json:"at_risk"`
	Correct    bool   `json:"correct"`
}

type bombPayload struct {
	Player    int  `json:"player"`
	Died      bool `json:"died"`
	ThirdBomb bool `json:"third_bomb"`
	Survivals int  `json:"survivals"`
}

type roundPayload struct {
	Focus  string `json:"focus"`
	Leader int    `json:"leader"`
}

type winnerPayload struct {
	Winner int `json:"winner"`
}

// Recorder appends the outcome-bearing events of a game to a Chain.
type Recorder struct {
	chain *Chain
	names []string
	err   error
}

// NewRecorder records into chain. names maps player indices to names for the
// block summaries.
func NewRecorder(chain *Chain, names []string) *Recorder {
	return &Recorder{chain: chain, names: names}
}

func (r *Recorder) Handle(e bluff.Event) {
	if r.err != nil {
		return
	}
	var (
		summary string
		payload any
	)
	switch e.Kind {
	case bluff.EventResolution:
		verdict := "lied"
		if e.Correct {
			verdict = "was honest"
		}
		summary = fmt.Sprintf("%s questioned %s, who %s; %s is at risk", r.name(e.Questioner), r.name(e.Accused), verdict, r.name(e.AtRisk))
		payload = resolutionPayload{
			Focus:      e.Focus.String(),
			Questioner: e.Questioner,
			Accused:    e.Accused,
			AtRisk:     e.AtRisk,
			Correct:    e.Correct,
		}
	case bluff.EventBombOutcome:
		switch {
		case e.ThirdBomb:
			summary = fmt.Sprintf("%s died on the third bomb", r.name(e.Player))
		case e.Died:
			summary = fmt.Sprintf("%s died", r.name(e.Player))
		default:
			summary = fmt.Sprintf("%s survived (%d in a row)", r.name(e.Player), e.Survivals)
		}
		payload = bombPayload{Player: e.Player, Died: e.Died, ThirdBomb: e.ThirdBomb, Survivals: e.Survivals}
	case bluff.EventRoundEnded:
		summary = fmt.Sprintf("round %d over", e.Round)
		payload = roundPayload{Focus: e.Focus.String(), Leader: e.Player}
	case bluff.EventGameWinner:
		summary = fmt.Sprintf("%s wins", r.name(e.Player))
		payload = winnerPayload{Winner: e.Player}
	default:
		return
	}
	if _, err := r.chain.Append(e.Round, string(e.Kind), summary, payload); err != nil {
		r.err = err
	}
}

// Err returns the first append failure, if any.
func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) name(idx int) string {
	if idx >= 0 && idx < len(r.names) {
		return r.names[idx]
	}
	return fmt.Sprintf("player %d", idx)
}

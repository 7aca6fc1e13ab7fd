package bluff

import "github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"

// PlayIsCorrect reports whether a revealed play is honest: it must contain
// at least one card and every card must be the focus or the wildcard.
func PlayIsCorrect(cards []deck.Card, focus deck.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c != focus && !c.IsWild() {
			return false
		}
	}
	return true
}

// Outcome is the result of a questioning.
type Outcome struct {
	Correct    bool // the questioned play was honest
	AtRisk     int  // who underwent the bomb check
	Died       bool
	ThirdBomb  bool
	NextLeader int // who leads the next round
}

// resolver reveals a questioned play and applies the consequences.
type resolver struct {
	registry *Registry
	pending  *pendingStore
	survival *survivalTracker
	emit     func(Event)
}

// resolve judges the accused's pending play against focus. The loser of the
// question undergoes a bomb check. Whatever the outcome, the questioner
// leads the next round, even when the bomb check just killed them.
func (r *resolver) resolve(questioner, accused int, focus deck.Card) Outcome {
	r.registry.Player(questioner)
	r.registry.Player(accused)

	play := r.pending.reveal(accused)
	cards, ok := play.Cards()

	revealed := newEvent(EventCardsRevealed)
	revealed.Player = accused
	revealed.Accused = accused
	revealed.Questioner = questioner
	revealed.Cards = cards
	revealed.NoRecord = !ok
	r.emit(revealed)

	out := Outcome{Correct: PlayIsCorrect(cards, focus)}
	if out.Correct {
		out.AtRisk = questioner
	} else {
		out.AtRisk = accused
	}

	res := newEvent(EventResolution)
	res.Questioner = questioner
	res.Accused = accused
	res.AtRisk = out.AtRisk
	res.Correct = out.Correct
	r.emit(res)

	out.Died, out.ThirdBomb = r.survival.bombCheck(out.AtRisk)
	out.NextLeader = questioner
	return out
}

package bluff

import "github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/random"

// survivalTracker keeps the consecutive-survival counter of every player,
// indexed by seat.
type survivalTracker struct {
	counters []int
	registry *Registry
	rng      random.Source
	emit     func(Event)
}

func newSurvivalTracker(r *Registry, rng random.Source, emit func(Event)) *survivalTracker {
	return &survivalTracker{
		counters: make([]int, r.Len()),
		registry: r,
		rng:      rng,
		emit:     emit,
	}
}

// bombCheck runs the elimination roll for idx and reports whether the player
// died. A player who already survived SafeSurvivals checks dies without a
// draw; otherwise death comes on one draw in BombOdds.
func (t *survivalTracker) bombCheck(idx int) (died, thirdBomb bool) {
	t.registry.Player(idx)

	switch {
	case t.counters[idx] >= SafeSurvivals:
		died, thirdBomb = true, true
	case t.rng.IntN(BombOdds) == 0:
		died = true
	}

	if died {
		t.counters[idx] = 0
		t.registry.kill(idx)
	} else {
		t.counters[idx]++
	}

	e := newEvent(EventBombOutcome)
	e.Player = idx
	e.AtRisk = idx
	e.Died = died
	e.ThirdBomb = thirdBomb
	e.Survivals = t.counters[idx]
	t.emit(e)
	return died, thirdBomb
}

func (t *survivalTracker) counter(idx int) int {
	return t.counters[idx]
}

func (t *survivalTracker) snapshot() []int {
	return append([]int(nil), t.counters...)
}

package bluff

import (
	"fmt"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

// Registry holds the seated players in registration order.
type Registry struct {
	players []Player
}

// NewRegistry seats one alive, empty-handed player per seat.
func NewRegistry(seats []Seat) *Registry {
	r := &Registry{players: make([]Player, len(seats))}
	for i, s := range seats {
		r.players[i] = Player{
			Name:       s.Name,
			Index:      i,
			Controller: s.Controller,
			Alive:      true,
		}
	}
	return r
}

// Len returns the number of seated players, dead or alive.
func (r *Registry) Len() int {
	return len(r.players)
}

// Player returns the player at idx. An untracked index is a state machine
// defect and panics.
func (r *Registry) Player(idx int) *Player {
	if idx < 0 || idx >= len(r.players) {
		panic(fmt.Sprintf("bluff: untracked player index %d (have %d players)", idx, len(r.players)))
	}
	return &r.players[idx]
}

// Players returns a copy of all players. Hands are copied too.
func (r *Registry) Players() []Player {
	out := make([]Player, len(r.players))
	for i, p := range r.players {
		p.Hand = append([]deck.Card(nil), p.Hand...)
		out[i] = p
	}
	return out
}

// Names returns the player names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	return names
}

// NextAliveWithCards scans forward circularly from the player after from and
// returns the first alive player holding cards, or NoPlayer. from may be
// NoPlayer to scan from the first seat. The player at from is checked last.
func (r *Registry) NextAliveWithCards(from int) int {
	return r.scan(from, Player.CanAct)
}

// NextAlive is like NextAliveWithCards but ignores hands.
func (r *Registry) NextAlive(from int) int {
	return r.scan(from, func(p Player) bool { return p.Alive })
}

func (r *Registry) scan(from int, ok func(Player) bool) int {
	n := len(r.players)
	if n == 0 {
		return NoPlayer
	}
	for i := 1; i <= n; i++ {
		idx := ((from+i)%n + n) % n
		if ok(r.players[idx]) {
			return idx
		}
	}
	return NoPlayer
}

// CountAlive returns how many players are alive.
func (r *Registry) CountAlive() int {
	count := 0
	for _, p := range r.players {
		if p.Alive {
			count++
		}
	}
	return count
}

// CountAliveWithCards returns how many players are alive and hold cards.
func (r *Registry) CountAliveWithCards() int {
	count := 0
	for _, p := range r.players {
		if p.CanAct() {
			count++
		}
	}
	return count
}

// Deal replaces the hand of every alive player with n cards from d, in
// registration order. A short deck yields short hands.
func (r *Registry) Deal(d *deck.Deck, n int) {
	for i := range r.players {
		if r.players[i].Alive {
			r.players[i].Hand = d.Deal(n)
		}
	}
}

// Winner returns the first player in registration order that is alive and
// holds cards, falling back to the first alive player. It returns NoPlayer
// when nobody is alive.
func (r *Registry) Winner() int {
	if idx := r.NextAliveWithCards(NoPlayer); idx != NoPlayer {
		return idx
	}
	return r.NextAlive(NoPlayer)
}

// kill marks the player dead and drops their hand.
func (r *Registry) kill(idx int) {
	p := r.Player(idx)
	p.Alive = false
	p.Hand = nil
}

package bluff

import "github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"

// PendingPlay is either NoPlay or the exact cards a player put down on their
// most recent turn.
type PendingPlay struct {
	played bool
	cards  []deck.Card
}

// NoPlay is the record of a player who has not played this round.
func NoPlay() PendingPlay {
	return PendingPlay{}
}

// Played records cards put down on a turn. The slice is copied.
func Played(cards []deck.Card) PendingPlay {
	return PendingPlay{played: true, cards: append([]deck.Card(nil), cards...)}
}

// Cards returns the played cards and whether there is a record at all.
func (p PendingPlay) Cards() ([]deck.Card, bool) {
	return append([]deck.Card(nil), p.cards...), p.played
}

// IsNoPlay reports whether there is no record.
func (p PendingPlay) IsNoPlay() bool {
	return !p.played
}

// Count returns how many cards were played, which is all other players ever
// learn before a question.
func (p PendingPlay) Count() int {
	return len(p.cards)
}

// pendingStore keeps one concealed PendingPlay per player index.
type pendingStore struct {
	plays []PendingPlay
}

func newPendingStore(n int) *pendingStore {
	return &pendingStore{plays: make([]PendingPlay, n)}
}

// record overwrites the player's pending play.
func (s *pendingStore) record(idx int, cards []deck.Card) {
	s.plays[idx] = Played(cards)
}

// reveal hands out the concealed play. Only the resolver calls it.
func (s *pendingStore) reveal(idx int) PendingPlay {
	return s.plays[idx]
}

func (s *pendingStore) count(idx int) int {
	return s.plays[idx].Count()
}

func (s *pendingStore) clear() {
	for i := range s.plays {
		s.plays[i] = NoPlay()
	}
}

package bluff

import (
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/random"
)

// botPolicy plays for every bot seat. It never looks at its cards: it picks a
// count uniformly and plays from the back of the hand.
type botPolicy struct {
	rng random.Source
}

// play draws a count in [MinPlay, MaxPlay] and plays that many cards, or
// the whole hand if it is shorter.
func (b botPolicy) play(hand []deck.Card) (played, rest []deck.Card) {
	k := b.rng.IntN(MaxPlay-MinPlay+1) + MinPlay
	return takeFromBack(hand, k)
}

// question decides whether to question the previous play.
func (b botPolicy) question() bool {
	return b.rng.IntN(100) < BotQuestionPercent
}

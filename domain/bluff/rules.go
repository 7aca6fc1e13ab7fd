package bluff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

// ErrInvalidInput wraps every move validation failure.
var ErrInvalidInput = errors.New("invalid input")

// MaxCount returns the most cards a player holding handSize cards may play.
func MaxCount(handSize int) int {
	return min(MaxPlay, handSize)
}

// ValidateCount checks that k cards can be played from a hand of handSize.
func ValidateCount(k, handSize int) error {
	if handSize < MinPlay {
		return fmt.Errorf("%w: no cards to play", ErrInvalidInput)
	}
	if k < MinPlay || k > MaxCount(handSize) {
		return fmt.Errorf("%w: number of cards must be between %d and %d", ErrInvalidInput, MinPlay, MaxCount(handSize))
	}
	return nil
}

// ValidatePositions checks that positions holds exactly k distinct indices
// into a hand of handSize.
func ValidatePositions(positions []int, handSize, k int) error {
	if err := ValidateCount(k, handSize); err != nil {
		return err
	}
	if len(positions) != k {
		return fmt.Errorf("%w: expected %d positions, got %d", ErrInvalidInput, k, len(positions))
	}
	seen := make(map[int]bool, k)
	for _, p := range positions {
		if p < 0 || p >= handSize {
			return fmt.Errorf("%w: index %d out of range", ErrInvalidInput, p+1)
		}
		if seen[p] {
			return fmt.Errorf("%w: index %d already chosen", ErrInvalidInput, p+1)
		}
		seen[p] = true
	}
	return nil
}

// ParseCount parses how many cards to play as typed by a player.
func ParseCount(text string, handSize int) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: please enter an integer", ErrInvalidInput)
	}
	if err := ValidateCount(k, handSize); err != nil {
		return 0, err
	}
	return k, nil
}

// ParsePosition parses a 1-based card index typed by a player and returns it
// 0-based. chosen holds the 0-based indices already picked this turn.
func ParsePosition(text string, handSize int, chosen []int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: please enter an integer", ErrInvalidInput)
	}
	idx := n - 1
	if idx < 0 || idx >= handSize {
		return 0, fmt.Errorf("%w: index out of range", ErrInvalidInput)
	}
	for _, c := range chosen {
		if c == idx {
			return 0, fmt.Errorf("%w: index already chosen", ErrInvalidInput)
		}
	}
	return idx, nil
}

// takePositions removes the cards at positions from hand. The played cards
// keep their hand order.
func takePositions(hand []deck.Card, positions []int) (played, rest []deck.Card) {
	pick := make(map[int]bool, len(positions))
	for _, p := range positions {
		pick[p] = true
	}
	for i, c := range hand {
		if pick[i] {
			played = append(played, c)
		} else {
			rest = append(rest, c)
		}
	}
	return played, rest
}

// takeFromBack removes up to n cards from the back of hand, last card first.
func takeFromBack(hand []deck.Card, n int) (played, rest []deck.Card) {
	rest = append([]deck.Card(nil), hand...)
	for i := 0; i < n && len(rest) > 0; i++ {
		last := len(rest) - 1
		played = append(played, rest[last])
		rest = rest[:last]
	}
	return played, rest
}

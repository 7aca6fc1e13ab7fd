package deck

import (
	"fmt"
	"strings"
)

// Card is one of the four card kinds in the bluff deck.
type Card uint8

const (
	Sun Card = iota
	Star
	Moon
	Magic // wildcard, accepted against any focus card
)

// Fixed deck composition.
const (
	SunCount   = 6
	StarCount  = 6
	MoonCount  = 6
	MagicCount = 2
	Size       = SunCount + StarCount + MoonCount + MagicCount
)

var names = [...]string{
	Sun:   "Sun",
	Star:  "Star",
	Moon:  "Moon",
	Magic: "Magic",
}

// String returns the display name of the card.
func (c Card) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("Card(%d)", uint8(c))
}

// IsWild reports whether the card is the wildcard.
func (c Card) IsWild() bool {
	return c == Magic
}

// ParseCard parses a card name, ignoring case.
func ParseCard(s string) (Card, error) {
	for i, n := range names {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return Card(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card %q", s)
}

// FocusCards returns the kinds a round can be focused on. Magic is never a focus.
func FocusCards() []Card {
	return []Card{Sun, Star, Moon}
}

// Format joins cards with a separator, e.g. "Sun - Magic".
func Format(cards []Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}
	return strings.Join(s, " - ")
}

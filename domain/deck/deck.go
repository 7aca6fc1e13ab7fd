package deck

// Shuffler is the part of the random source the deck consumes.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is the multiset of cards a round is dealt from. Cards are dealt from
// the back of the slice.
type Deck struct {
	cards []Card
	rng   Shuffler
}

// New returns a full, shuffled deck.
func New(rng Shuffler) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset discards the remaining cards, restores the fixed composition and
// shuffles it uniformly.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	d.cards = appendN(d.cards, Sun, SunCount)
	d.cards = appendN(d.cards, Star, StarCount)
	d.cards = appendN(d.cards, Moon, MoonCount)
	d.cards = appendN(d.cards, Magic, MagicCount)
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns up to n cards. When fewer than n cards remain it
// returns all of them; it never fails.
func (d *Deck) Deal(n int) []Card {
	hand := make([]Card, 0, max(n, 0))
	for i := 0; i < n && len(d.cards) > 0; i++ {
		last := len(d.cards) - 1
		hand = append(hand, d.cards[last])
		d.cards = d.cards[:last]
	}
	return hand
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Count returns how many cards of kind c are left.
func (d *Deck) Count(c Card) int {
	n := 0
	for _, card := range d.cards {
		if card == c {
			n++
		}
	}
	return n
}

func appendN(cards []Card, c Card, n int) []Card {
	for range n {
		cards = append(cards, c)
	}
	return cards
}

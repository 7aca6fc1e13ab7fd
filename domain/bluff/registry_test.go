package bluff

import (
	"testing"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

func TestNextAliveWithCardsSkipsDeadAndHandless(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(0).Hand = cards(deck.Sun)
	r.Player(1).Hand = cards(deck.Sun)
	r.Player(1).Alive = false
	r.Player(2).Hand = nil
	r.Player(3).Hand = cards(deck.Moon)

	if got := r.NextAliveWithCards(0); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := r.NextAliveWithCards(3); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
}

func TestNextAliveWithCardsNone(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(2).Alive = false
	r.Player(2).Hand = cards(deck.Star)
	for from := NoPlayer; from < r.Len(); from++ {
		if got := r.NextAliveWithCards(from); got != NoPlayer {
			t.Fatalf("from %d: expected NoPlayer, got %d", from, got)
		}
	}
}

func TestNextAliveWithCardsReturnsOnlyPlayersThatCanAct(t *testing.T) {
	r := NewRegistry(fourBots())
	layouts := [][4]bool{
		{true, false, true, false},
		{false, false, false, true},
		{true, true, true, true},
	}
	for _, layout := range layouts {
		for i, hasCards := range layout {
			r.Player(i).Hand = nil
			if hasCards {
				r.Player(i).Hand = cards(deck.Moon)
			}
		}
		r.Player(1).Alive = false
		for from := 0; from < r.Len(); from++ {
			got := r.NextAliveWithCards(from)
			if got == NoPlayer {
				continue
			}
			if !r.Player(got).CanAct() {
				t.Fatalf("layout %v from %d: returned player %d that cannot act", layout, from, got)
			}
		}
	}
}

func TestNextAliveWithCardsChecksSelfLast(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(2).Hand = cards(deck.Sun)
	if got := r.NextAliveWithCards(2); got != 2 {
		t.Fatalf("expected scan to come back to 2, got %d", got)
	}
}

func TestNextAliveFromNoPlayer(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(0).Alive = false
	if got := r.NextAlive(NoPlayer); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestCounts(t *testing.T) {
	r := NewRegistry(fourBots())
	if r.CountAlive() != 4 || r.CountAliveWithCards() != 0 {
		t.Fatalf("unexpected counts %d/%d", r.CountAlive(), r.CountAliveWithCards())
	}
	r.Player(0).Hand = cards(deck.Sun)
	r.Player(1).Hand = cards(deck.Sun)
	r.kill(1)
	if r.CountAlive() != 3 {
		t.Errorf("expected 3 alive, got %d", r.CountAlive())
	}
	if r.CountAliveWithCards() != 1 {
		t.Errorf("expected 1 alive with cards, got %d", r.CountAliveWithCards())
	}
}

func TestDealReplacesHandsOfAlivePlayers(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(0).Hand = cards(deck.Sun, deck.Sun, deck.Sun, deck.Sun, deck.Sun, deck.Sun, deck.Sun)
	r.kill(2)
	d := deck.New(script(t))
	r.Deal(d, 5)
	for i := 0; i < r.Len(); i++ {
		p := r.Player(i)
		want := 5
		if !p.Alive {
			want = 0
		}
		if len(p.Hand) != want {
			t.Errorf("player %d: expected %d cards, got %d", i, want, len(p.Hand))
		}
	}
	if d.Len() != deck.Size-15 {
		t.Errorf("expected %d cards left in deck, got %d", deck.Size-15, d.Len())
	}
}

func TestDealShortDeck(t *testing.T) {
	r := NewRegistry(append(fourBots(), Seat{Name: "E"}))
	d := deck.New(script(t))
	r.Deal(d, 5)
	if got := len(r.Player(4).Hand); got != 0 {
		t.Fatalf("expected the fifth player to get nothing from an empty deck, got %d", got)
	}
	if r.CountAliveWithCards() != 4 {
		t.Fatalf("expected 4 players with cards, got %d", r.CountAliveWithCards())
	}
}

func TestWinnerPrefersPlayerWithCards(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(2).Hand = cards(deck.Star)
	if got := r.Winner(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestWinnerFallsBackToRegistryOrder(t *testing.T) {
	r := NewRegistry(fourBots())
	r.kill(0)
	if got := r.Winner(); got != 1 {
		t.Fatalf("expected first alive player 1, got %d", got)
	}
	for i := 1; i < 4; i++ {
		r.kill(i)
	}
	if got := r.Winner(); got != NoPlayer {
		t.Fatalf("expected NoPlayer, got %d", got)
	}
}

func TestPlayerPanicsOnUntrackedIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewRegistry(fourBots()).Player(7)
}

func TestPlayersReturnsCopies(t *testing.T) {
	r := NewRegistry(fourBots())
	r.Player(0).Hand = cards(deck.Sun)
	ps := r.Players()
	ps[0].Hand[0] = deck.Magic
	ps[0].Alive = false
	if r.Player(0).Hand[0] != deck.Sun || !r.Player(0).Alive {
		t.Fatal("Players must not expose internal state")
	}
}

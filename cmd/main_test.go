package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/config"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/bluff"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/ledger"
)

// scriptedTerminal answers prompts from a queue and records rejections.
func scriptedTerminal(answers ...string) (*terminalPlayer, *[]error) {
	var failures []error
	p := &terminalPlayer{
		ask: func(string) (string, error) {
			if len(answers) == 0 {
				return "", errors.New("no more input")
			}
			a := answers[0]
			answers = answers[1:]
			return a, nil
		},
		confirm: func(string) (bool, error) { return true, nil },
		fail:    func(err error) { failures = append(failures, err) },
	}
	return p, &failures
}

func TestChooseMoveCountRepromptsUntilValid(t *testing.T) {
	p, failures := scriptedTerminal("abc", "0", "4", "2")
	hand := []deck.Card{deck.Sun, deck.Star, deck.Moon, deck.Magic}

	k, err := p.ChooseMoveCount(hand)
	if err != nil {
		t.Fatal(err)
	}
	if k != 2 {
		t.Fatalf("expected 2, got %d", k)
	}
	if len(*failures) != 3 {
		t.Fatalf("expected 3 rejected inputs, got %d", len(*failures))
	}
	for _, f := range *failures {
		if !errors.Is(f, bluff.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", f)
		}
	}
}

func TestChooseMoveCountShortHand(t *testing.T) {
	p, failures := scriptedTerminal("3", "1")
	k, err := p.ChooseMoveCount([]deck.Card{deck.Sun})
	if err != nil || k != 1 {
		t.Fatalf("expected 1, got %d, %v", k, err)
	}
	if len(*failures) != 1 {
		t.Fatalf("expected 3 to be rejected for a single card, got %d failures", len(*failures))
	}
}

func TestChooseCardPositions(t *testing.T) {
	p, failures := scriptedTerminal("3", "3", "9", "x", "1")
	hand := []deck.Card{deck.Sun, deck.Star, deck.Moon}

	positions, err := p.ChooseCardPositions(hand, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 2 || positions[0] != 2 || positions[1] != 0 {
		t.Fatalf("expected [2 0], got %v", positions)
	}
	if len(*failures) != 3 {
		t.Fatalf("expected 3 rejected inputs, got %d", len(*failures))
	}
	if err := bluff.ValidatePositions(positions, len(hand), 2); err != nil {
		t.Fatalf("provider returned invalid positions: %v", err)
	}
}

func TestPromptErrorStopsLoop(t *testing.T) {
	p, _ := scriptedTerminal()
	if _, err := p.ChooseMoveCount([]deck.Card{deck.Sun}); err == nil {
		t.Fatal("expected input error to propagate")
	}
}

func TestDescribeNeverRevealsPlayedCards(t *testing.T) {
	r := newRenderer([]string{"Human", "Bot1"}, 0)
	msg := r.describe(bluff.Event{Kind: bluff.EventPlayMade, Player: 1, Count: 2})
	if msg != "Bot1 played 2 card(s) (hidden)." {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestDescribe(t *testing.T) {
	r := newRenderer([]string{"Human", "Bot1"}, 0)
	cases := []struct {
		e    bluff.Event
		want string
	}{
		{bluff.Event{Kind: bluff.EventQuestionRaised, Questioner: 1, Accused: 0, Forced: true}, "Bot1 is forced to question Human (you)!"},
		{bluff.Event{Kind: bluff.EventCardsRevealed, Accused: 1, Cards: []deck.Card{deck.Moon, deck.Magic}}, "Revealing cards of Bot1: Moon - Magic"},
		{bluff.Event{Kind: bluff.EventCardsRevealed, Accused: 1, NoRecord: true}, "Revealing cards of Bot1: (no record of played cards)"},
		{bluff.Event{Kind: bluff.EventResolution, Questioner: 0, Accused: 1, Correct: true}, "Human (you) was wrong to question!"},
		{bluff.Event{Kind: bluff.EventBombOutcome, Player: 1, Died: true, ThirdBomb: true}, "Bomb exploded! Bot1 has died (3rd time bomb)!"},
		{bluff.Event{Kind: bluff.EventBombOutcome, Player: 1}, "Bomb did not explode this time! Bot1 has survived."},
		{bluff.Event{Kind: bluff.EventGameWinner, Player: 1}, "Bot1 wins!"},
		{bluff.Event{Kind: bluff.EventGameWinner, Player: bluff.NoPlayer}, "Nobody survived."},
		{bluff.Event{Kind: bluff.EventHandShown, Cards: []deck.Card{deck.Sun, deck.Magic}}, "1: Sun  2: Magic"},
	}
	for _, c := range cases {
		if got := r.describe(c.e); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.e.Kind, c.want, got)
		}
	}
}

func TestRendererHandle(t *testing.T) {
	var buf strings.Builder
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()
	defer func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableColor()
	}()

	r := newRenderer([]string{"Human", "Bot1"}, 0)
	r.Handle(bluff.Event{Kind: bluff.EventPlayMade, Player: 1, Count: 1})
	if !strings.Contains(buf.String(), "Bot1 played 1 card(s)") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestBuildSeats(t *testing.T) {
	cfg := config.Game{PlayerName: "Ada", BotNames: []string{"B1", "B2", "B3"}}
	seats, human := buildSeats(cfg)
	if len(seats) != 4 || human != 0 || seats[0].Controller != bluff.Human || seats[3].Name != "B3" {
		t.Fatalf("unexpected seats %+v (human %d)", seats, human)
	}

	cfg.Autoplay = true
	seats, human = buildSeats(cfg)
	if human != bluff.NoPlayer || seats[0].Controller != bluff.Bot {
		t.Fatalf("expected autoplay to seat a bot, got %+v (human %d)", seats, human)
	}
}

func TestPtermLevel(t *testing.T) {
	cases := map[slog.Level]pterm.LogLevel{
		slog.LevelDebug: pterm.LogLevelDebug,
		slog.LevelInfo:  pterm.LogLevelInfo,
		slog.LevelWarn:  pterm.LogLevelWarn,
		slog.LevelError: pterm.LogLevelError,
	}
	for in, want := range cases {
		if got := ptermLevel(in); got != want {
			t.Errorf("ptermLevel(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestHistoryTable(t *testing.T) {
	chain := ledger.New()
	if _, err := chain.Append(1, "round-ended", "round 1 over", nil); err != nil {
		t.Fatal(err)
	}
	data := historyTable(chain)
	if len(data) != 2 {
		t.Fatalf("expected header and one row, got %d rows", len(data))
	}
	row := data[1]
	if row[0] != "1" || row[2] != "round-ended" || len(row[4]) != 12 {
		t.Fatalf("unexpected row %v", row)
	}
}

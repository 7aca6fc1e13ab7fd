package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/bluff"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/ledger"
)

// renderer prints game events for the human at the table.
type renderer struct {
	names []string
	human int
}

func newRenderer(names []string, human int) *renderer {
	return &renderer{names: names, human: human}
}

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("luff ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ar", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func (r *renderer) Handle(e bluff.Event) {
	msg := r.describe(e)
	switch e.Kind {
	case bluff.EventRoundStarted:
		pterm.DefaultSection.Println(msg)
	case bluff.EventHandShown:
		pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
		pbox.WithTitle(pterm.LightCyan("|YOUR HAND|")).WithTitleTopLeft().Println(msg)
	case bluff.EventQuestionRaised, bluff.EventCardsRevealed:
		pterm.Warning.Println(msg)
	case bluff.EventResolution:
		pterm.Info.Println(msg)
	case bluff.EventBombOutcome:
		if e.Died {
			pterm.Error.Println(msg)
		} else {
			pterm.Success.Println(msg)
		}
	case bluff.EventGameWinner:
		pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
		pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Println(msg)
	default:
		pterm.Println(msg)
	}
}

// describe returns the plain text of an event as seen from the human's seat.
func (r *renderer) describe(e bluff.Event) string {
	switch e.Kind {
	case bluff.EventRoundStarted:
		return pterm.Sprintf("Round %d begins! Focus card: %s. First player: %s", e.Round, e.Focus, r.name(e.Player))
	case bluff.EventHandShown:
		return formatHand(e.Cards)
	case bluff.EventPlayMade:
		return pterm.Sprintf("%s played %d card(s) (hidden).", r.name(e.Player), e.Count)
	case bluff.EventQuestionDeclined:
		return pterm.Sprintf("%s decided NOT to question.", r.name(e.Player))
	case bluff.EventQuestionRaised:
		if e.Forced {
			return pterm.Sprintf("%s is forced to question %s!", r.name(e.Questioner), r.name(e.Accused))
		}
		return pterm.Sprintf("%s questions %s!", r.name(e.Questioner), r.name(e.Accused))
	case bluff.EventCardsRevealed:
		if e.NoRecord {
			return pterm.Sprintf("Revealing cards of %s: (no record of played cards)", r.name(e.Accused))
		}
		return pterm.Sprintf("Revealing cards of %s: %s", r.name(e.Accused), deck.Format(e.Cards))
	case bluff.EventResolution:
		if e.Correct {
			return pterm.Sprintf("%s was wrong to question!", r.name(e.Questioner))
		}
		return pterm.Sprintf("%s played wrongly! %s was right to question!", r.name(e.Accused), r.name(e.Questioner))
	case bluff.EventBombOutcome:
		switch {
		case e.ThirdBomb:
			return pterm.Sprintf("Bomb exploded! %s has died (3rd time bomb)!", r.name(e.Player))
		case e.Died:
			return pterm.Sprintf("Bomb exploded! %s has died.", r.name(e.Player))
		default:
			return pterm.Sprintf("Bomb did not explode this time! %s has survived.", r.name(e.Player))
		}
	case bluff.EventRoundEnded:
		return "ROUND OVER"
	case bluff.EventGameWinner:
		if e.Player == bluff.NoPlayer {
			return "Nobody survived."
		}
		return pterm.Sprintf("%s wins!", r.name(e.Player))
	}
	return string(e.Kind)
}

func (r *renderer) name(idx int) string {
	if idx < 0 || idx >= len(r.names) {
		return "nobody"
	}
	if idx == r.human {
		return r.names[idx] + " (you)"
	}
	return r.names[idx]
}

// formatHand numbers the cards from 1, the way the player types them.
func formatHand(hand []deck.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = strconv.Itoa(i+1) + ": " + c.String()
	}
	return strings.Join(parts, "  ")
}

func historyTable(chain *ledger.Chain) pterm.TableData {
	data := pterm.TableData{{"#", "Round", "Event", "Summary", "Hash"}}
	for _, b := range chain.Blocks()[1:] {
		data = append(data, []string{
			strconv.Itoa(b.Index),
			strconv.Itoa(b.Round),
			b.Kind,
			b.Summary,
			b.Hash[:12],
		})
	}
	return data
}

func printHistory(chain *ledger.Chain) error {
	return pterm.DefaultTable.WithHasHeader().WithData(historyTable(chain)).Render()
}

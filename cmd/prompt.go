package main

import (
	"github.com/pterm/pterm"

	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/bluff"
	"github.com/Sumiya-Bano-Samiullah/Bluff-Bar-Game/domain/deck"
)

// terminalPlayer reads the human's moves from the terminal. It re-prompts
// until the input passes the move rules, so the engine only ever sees valid
// moves.
type terminalPlayer struct {
	ask     func(prompt string) (string, error)
	confirm func(prompt string) (bool, error)
	fail    func(err error)
}

func newTerminalPlayer() *terminalPlayer {
	return &terminalPlayer{
		ask: func(prompt string) (string, error) {
			return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		},
		confirm: func(prompt string) (bool, error) {
			return pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).WithDefaultValue(false).Show()
		},
		fail: func(err error) {
			pterm.Error.Printfln("%s. Try again.", err)
		},
	}
}

func (p *terminalPlayer) ChooseMoveCount(hand []deck.Card) (int, error) {
	prompt := pterm.Sprintf("How many cards do you want to play (1-%d)?", bluff.MaxCount(len(hand)))
	for {
		text, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		k, err := bluff.ParseCount(text, len(hand))
		if err != nil {
			p.fail(err)
			continue
		}
		return k, nil
	}
}

func (p *terminalPlayer) ChooseCardPositions(hand []deck.Card, count int) ([]int, error) {
	chosen := make([]int, 0, count)
	for len(chosen) < count {
		text, err := p.ask(pterm.Sprintf("Enter index #%d (1-%d)", len(chosen)+1, len(hand)))
		if err != nil {
			return nil, err
		}
		idx, err := bluff.ParsePosition(text, len(hand), chosen)
		if err != nil {
			p.fail(err)
			continue
		}
		chosen = append(chosen, idx)
	}
	return chosen, nil
}

func (p *terminalPlayer) DecideToQuestion(accused bluff.Player, count int) (bool, error) {
	return p.confirm(pterm.Sprintf("%s played %d card(s). Question the play?", accused.Name, count))
}

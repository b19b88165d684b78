package render

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested UI action.
type Action uint8

const (
	ActionNone Action = iota
	ActionGuess
	ActionNewGame
	ActionRestart
	ActionQuit
	ActionLeave // close the program; not offered as a board control
)

// Input is an Action plus the letter for ActionGuess.
type Input struct {
	Action Action
	Letter rune
}

// keyToInput maps a tcell key event to an input.
func keyToInput(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Input{Action: ActionLeave}
	case tcell.KeyCtrlN, tcell.KeyF2:
		return Input{Action: ActionNewGame}
	case tcell.KeyCtrlR, tcell.KeyF5:
		return Input{Action: ActionRestart}
	case tcell.KeyEscape:
		return Input{Action: ActionQuit}
	case tcell.KeyRune:
	default:
		return Input{}
	}

	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		switch unicode.ToLower(r) {
		case 'c':
			return Input{Action: ActionLeave}
		case 'n':
			return Input{Action: ActionNewGame}
		case 'r':
			return Input{Action: ActionRestart}
		}
		return Input{}
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		return Input{}
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r >= 'A' && r <= 'Z' {
		return Input{Action: ActionGuess, Letter: r}
	}
	return Input{}
}

package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/skysnake/internal/input"
)

// Action is what a key press asks the game to do
type Action uint8

const (
	ActNone Action = iota
	ActTurn
	ActAcknowledge
	ActQuit
)

// Classify maps a terminal key event to an action, and for ActTurn the
// direction to turn
func Classify(ev *tcell.EventKey) (Action, input.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActTurn, input.Up
	case tcell.KeyDown:
		return ActTurn, input.Down
	case tcell.KeyLeft:
		return ActTurn, input.Left
	case tcell.KeyRight:
		return ActTurn, input.Right
	case tcell.KeyEnter:
		return ActAcknowledge, input.None
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActQuit, input.None
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case ' ':
			return ActAcknowledge, input.None
		case 'q', 'Q':
			return ActQuit, input.None
		default:
			if d, ok := input.ParseKey(string(r)); ok {
				return ActTurn, d
			}
		}
	}
	return ActNone, input.None
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"snake-game/game/types"
)

// Command is what a keystroke asks the driver to do.
type Command int

const (
	CommandNone Command = iota
	CommandMove
	CommandRestart
	CommandQuit
)

// TranslateKey maps a key event to a command. Movement comes from WASD
// or the arrow keys, Escape and Ctrl-C quit, R restarts. Anything else
// is CommandNone. dir is meaningful only when cmd is CommandMove.
func TranslateKey(ev *tcell.EventKey) (cmd Command, dir types.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, 0
	case tcell.KeyUp:
		return CommandMove, types.Up
	case tcell.KeyDown:
		return CommandMove, types.Down
	case tcell.KeyLeft:
		return CommandMove, types.Left
	case tcell.KeyRight:
		return CommandMove, types.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return CommandMove, types.Up
		case 's', 'S':
			return CommandMove, types.Down
		case 'a', 'A':
			return CommandMove, types.Left
		case 'd', 'D':
			return CommandMove, types.Right
		case 'r', 'R':
			return CommandRestart, 0
		}
	}
	return CommandNone, 0
}

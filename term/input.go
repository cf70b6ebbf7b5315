package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/termsweep/game"
)

// Key asking the director for a single action
const directorStepKey = 'n'

var runeCommands = map[rune]game.Command{
	' ': game.SelectCommand,

	'w': game.MoveCommand(game.Up),
	'a': game.MoveCommand(game.Left),
	's': game.MoveCommand(game.Down),
	'd': game.MoveCommand(game.Right),

	'k': game.MoveCommand(game.Up),
	'h': game.MoveCommand(game.Left),
	'j': game.MoveCommand(game.Down),
	'l': game.MoveCommand(game.Right),

	'f': game.MarkCommand,
	'm': game.MarkCommand,
	'r': game.RestartCommand,
	'q': game.QuitCommand,
	'Q': game.QuitCommand,
}

var keyCommands = map[tcell.Key]game.Command{
	tcell.KeyUp:     game.MoveCommand(game.Up),
	tcell.KeyDown:   game.MoveCommand(game.Down),
	tcell.KeyLeft:   game.MoveCommand(game.Left),
	tcell.KeyRight:  game.MoveCommand(game.Right),
	tcell.KeyEnter:  game.SelectCommand,
	tcell.KeyEscape: game.QuitCommand,
	tcell.KeyCtrlC:  game.QuitCommand,
}

// Translate maps a key press onto a session command. It returns false for unbound keys.
func Translate(event *tcell.EventKey) (game.Command, bool) {
	if event.Key() == tcell.KeyRune {
		command, ok := runeCommands[event.Rune()]
		return command, ok
	}
	command, ok := keyCommands[event.Key()]
	return command, ok
}

func IsDirectorStep(event *tcell.EventKey) bool {
	return event.Key() == tcell.KeyRune && event.Rune() == directorStepKey
}

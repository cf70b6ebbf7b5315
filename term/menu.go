package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/termsweep/game"
)

var menuHeader = []string{
	"Welcome to Minesweeper.",
	"Press q at any time to quit.",
	"",
}

// ChooseLevel shows the level menu until a level is confirmed with Enter. It returns
// false if the player quit instead.
func ChooseLevel(screen tcell.Screen) (game.Level, bool) {
	selected := 0
	screen.HideCursor()

	for {
		drawMenu(screen, selected)

		switch event := screen.PollEvent().(type) {
		case nil:
			// Screen was finalized
			return game.Level{}, false

		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			switch {
			case event.Key() == tcell.KeyEnter:
				return game.Levels[selected], true
			case event.Key() == tcell.KeyUp, event.Rune() == 'w', event.Rune() == 'k':
				selected = max(selected-1, 0)
			case event.Key() == tcell.KeyDown, event.Rune() == 's', event.Rune() == 'j':
				selected = min(selected+1, len(game.Levels)-1)
			default:
				if command, ok := Translate(event); ok && command == game.QuitCommand {
					return game.Level{}, false
				}
			}
		}
	}
}

func drawMenu(screen tcell.Screen, selected int) {
	screen.Clear()

	row := 0
	for _, line := range menuHeader {
		drawText(screen, 0, row, tcell.StyleDefault, line)
		row++
	}
	for i, level := range game.Levels {
		style := tcell.StyleDefault
		if i == selected {
			style = style.Bold(true).Reverse(true)
		}
		drawText(screen, 0, row, style, fmt.Sprintf("%d. %s", i+1, level))
		row++
	}

	screen.Show()
}

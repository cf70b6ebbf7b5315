package term

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/termsweep/game"
)

const (
	playingHint  = "arrows/wasd move, enter/space uncover, f mark, q quit"
	directorHint = ", n director"
	gameOverHint = "press r to play again, q to quit"
)

// Draw renders view onto screen: the board from the top-left corner, then a status
// line and a hint line below it. A non-empty message replaces the hint.
func Draw(screen tcell.Screen, theme Theme, view game.View, directorName, message string) {
	screen.Clear()

	cellWidth, cellHeight := theme.cellSize()
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			pos := game.Pos{X: x, Y: y}
			r, style := theme.cellGlyph(view, pos)
			if pos == view.Selection && !view.State.IsOver() {
				style = style.Reverse(true)
			}
			screen.SetContent(x*cellWidth, y*cellHeight, r, nil, style)
		}
	}

	if view.State.IsOver() {
		screen.HideCursor()
	} else {
		screen.ShowCursor(view.Selection.X*cellWidth, view.Selection.Y*cellHeight)
	}

	top := view.Height * cellHeight
	statusStyle := tcell.StyleDefault.Foreground(color(theme.Colors.Status))
	drawText(screen, 0, top, statusStyle.Bold(true), statusLine(view, directorName))

	hint := message
	if hint == "" {
		hint = hintLine(view, directorName)
	}
	drawText(screen, 0, top+1, statusStyle, hint)

	screen.Show()
}

// cellGlyph decides how a single cell looks. After a loss, marks on safe cells are
// shown as mistakes and the mine that ended the game stands out from the rest.
func (theme Theme) cellGlyph(view game.View, pos game.Pos) (rune, tcell.Style) {
	symbols := theme.Symbols
	style := tcell.StyleDefault
	cell := view.At(pos)

	switch {
	case view.LosingCell != nil && *view.LosingCell == pos:
		return glyph(symbols.LosingMine, '*'), style.Foreground(color(theme.Colors.Mine)).Bold(true).Blink(true)

	case cell.Marked:
		if view.State == game.Lost && cell.Known && !cell.Kind.IsMine() {
			return glyph(symbols.WrongMark, 'x'), style.Foreground(color(theme.Colors.Mine))
		}
		return glyph(symbols.Mark, 'F'), style.Foreground(color(theme.Colors.Mark))

	case cell.Covered:
		if view.State == game.Won && cell.Kind.IsMine() {
			return glyph(symbols.Mark, 'F'), style.Foreground(color(theme.Colors.Mark))
		}
		return glyph(symbols.Covered, 'X'), style

	case cell.Kind.IsMine():
		return glyph(symbols.Mine, '!'), style.Foreground(color(theme.Colors.Mine)).Bold(true)

	case cell.Kind.IsEmpty():
		return glyph(symbols.Empty, ' '), style

	default:
		numMines := cell.Kind.NumMines()
		return rune(strconv.Itoa(numMines)[0]), style.Foreground(theme.numberColor(numMines))
	}
}

func statusLine(view game.View, directorName string) string {
	var state string
	switch view.State {
	case game.NotTouched:
		state = "Ready"
	case game.InProgress:
		state = "Playing"
	case game.Won:
		state = "You won!"
	case game.Lost:
		state = "Boom! You lost."
	}

	status := fmt.Sprintf("Mines: %d  %s", view.MinesRemaining(), state)
	if directorName != "" {
		status += fmt.Sprintf("  [director: %s]", directorName)
	}
	return status
}

func hintLine(view game.View, directorName string) string {
	if view.State.IsOver() {
		return gameOverHint
	}
	if directorName != "" {
		return playingHint + directorHint
	}
	return playingHint
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

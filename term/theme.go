package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Theme controls how a board is drawn. It is decoded from the "theme" block of the
// config file, over the top of DefaultTheme.
type Theme struct {
	Symbols Symbols `mapstructure:"symbols"`
	Colors  Colors  `mapstructure:"colors"`

	// Screen columns and rows taken up by a single cell
	CellWidth  int `mapstructure:"cell_width"`
	CellHeight int `mapstructure:"cell_height"`
}

type Symbols struct {
	Covered    string `mapstructure:"covered"`
	Empty      string `mapstructure:"empty"`
	Mine       string `mapstructure:"mine"`
	Mark       string `mapstructure:"mark"`
	WrongMark  string `mapstructure:"wrong_mark"`
	LosingMine string `mapstructure:"losing_mine"`
}

// Colors are tcell colour names ("red", "navy") or hex triplets ("#ff8800").
type Colors struct {
	// Numbers[n-1] is the colour of a cell with n adjacent mines
	Numbers []string `mapstructure:"numbers"`
	Mine    string   `mapstructure:"mine"`
	Mark    string   `mapstructure:"mark"`
	Cursor  string   `mapstructure:"cursor"`
	Status  string   `mapstructure:"status"`
}

func DefaultTheme() Theme {
	return Theme{
		Symbols: Symbols{
			Covered:    "X",
			Empty:      " ",
			Mine:       "!",
			Mark:       "F",
			WrongMark:  "x",
			LosingMine: "*",
		},
		Colors: Colors{
			Numbers: []string{"blue", "green", "red", "navy", "maroon", "teal", "purple", "gray"},
			Mine:    "red",
			Mark:    "yellow",
			Cursor:  "silver",
			Status:  "white",
		},
		CellWidth:  4,
		CellHeight: 2,
	}
}

// glyph returns the first rune of symbol, or fallback if it is empty.
func glyph(symbol string, fallback rune) rune {
	if r, size := utf8.DecodeRuneInString(symbol); size > 0 && r != utf8.RuneError {
		return r
	}
	return fallback
}

func color(name string) tcell.Color {
	return tcell.GetColor(name)
}

func (theme Theme) numberColor(numMines int) tcell.Color {
	if numMines < 1 || numMines > len(theme.Colors.Numbers) {
		return tcell.ColorDefault
	}
	return color(theme.Colors.Numbers[numMines-1])
}

// cellSize returns the cell spacing, never smaller than a single screen cell.
func (theme Theme) cellSize() (int, int) {
	return max(theme.CellWidth, 1), max(theme.CellHeight, 1)
}

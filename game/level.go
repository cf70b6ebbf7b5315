package game

import (
	"fmt"
	"strings"
)

type Level struct {
	Name          string
	Width, Height int
	NumMines      int
}

var (
	Beginner     = Level{Name: "beginner", Width: 9, Height: 9, NumMines: 10}
	Intermediate = Level{Name: "intermediate", Width: 16, Height: 16, NumMines: 40}
	Advanced     = Level{Name: "advanced", Width: 24, Height: 24, NumMines: 99}
)

// Levels lists the presets in menu order.
var Levels = []Level{Beginner, Intermediate, Advanced}

// ParseLevel accepts a level name or its 1-based menu number.
func ParseLevel(value string) (Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for i, level := range Levels {
		if value == level.Name || value == fmt.Sprint(i+1) {
			return level, nil
		}
	}
	return Level{}, fmt.Errorf("invalid level %q", value)
}

func (level Level) String() string {
	if level.Name == "" {
		return fmt.Sprintf("%d * %d Board and %d Mines", level.Width, level.Height, level.NumMines)
	}
	return fmt.Sprintf("%s – %d * %d Board and %d Mines",
		strings.ToUpper(level.Name[:1])+level.Name[1:], level.Width, level.Height, level.NumMines)
}

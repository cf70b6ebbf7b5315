package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/termsweep/game"
)

func TestChooseLevel(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tcell.Key
		want   game.Level
		wantOk bool
	}{
		{"default", []tcell.Key{tcell.KeyEnter}, game.Beginner, true},
		{"down", []tcell.Key{tcell.KeyDown, tcell.KeyEnter}, game.Intermediate, true},
		{"clamped down", []tcell.Key{tcell.KeyDown, tcell.KeyDown, tcell.KeyDown, tcell.KeyEnter}, game.Advanced, true},
		{"clamped up", []tcell.Key{tcell.KeyUp, tcell.KeyDown, tcell.KeyUp, tcell.KeyUp, tcell.KeyEnter}, game.Beginner, true},
		{"escape", []tcell.Key{tcell.KeyDown, tcell.KeyEscape}, game.Level{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newScreen(t)
			for _, key := range tt.keys {
				screen.InjectKey(key, 0, tcell.ModNone)
			}

			level, ok := ChooseLevel(screen)
			if ok != tt.wantOk || level != tt.want {
				t.Fatalf("ChooseLevel() = %v, %t; want %v, %t", level, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestChooseLevel_QuitKey(t *testing.T) {
	screen := newScreen(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if _, ok := ChooseLevel(screen); ok {
		t.Fatalf("q should quit the menu")
	}
}

func TestDrawMenu(t *testing.T) {
	screen := newScreen(t)
	drawMenu(screen, 1)

	want := []string{
		"Welcome to Minesweeper.",
		"Press q at any time to quit.",
		"",
		"1. Beginner – 9 * 9 Board and 10 Mines",
		"2. Intermediate – 16 * 16 Board and 40 Mines",
		"3. Advanced – 24 * 24 Board and 99 Mines",
	}
	for y, line := range want {
		if got := lineAt(screen, y); got != line {
			t.Errorf("line %d: got %q, want %q", y, got, line)
		}
	}
}

package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/they4kman/termsweep/game"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func lineAt(screen tcell.SimulationScreen, y int) string {
	_, width, _ := screen.GetContents()
	var line strings.Builder
	for x := 0; x < width; x++ {
		line.WriteRune(runeAt(screen, x, y))
	}
	return strings.TrimRight(line.String(), " ")
}

func layoutSession(t *testing.T, board string) *game.Session {
	t.Helper()
	snapshot, err := game.LoadSnapshot("board: " + board + "\n")
	if err != nil {
		t.Fatal(err)
	}
	config := game.NewConfig()
	config.Layout = snapshot
	session, err := game.NewSession(config)
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func nullLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

func TestDraw_FreshBoard(t *testing.T) {
	screen := newScreen(t)
	session := layoutSession(t, "O.O...")

	Draw(screen, DefaultTheme(), session.View(), "", "")

	if got := lineAt(screen, 0); got != "X   X   X   X   X   X" {
		t.Fatalf("unexpected board row %q", got)
	}
	if got := lineAt(screen, 2); got != "Mines: 2  Ready" {
		t.Fatalf("unexpected status line %q", got)
	}
	if got := lineAt(screen, 3); got != playingHint {
		t.Fatalf("unexpected hint line %q", got)
	}
}

func TestDraw_Loss(t *testing.T) {
	screen := newScreen(t)
	session := layoutSession(t, "O.O...")

	session.Select() // (3, 0)
	session.Move(game.Right)
	session.Mark() // (4, 0) holds no mine
	for range 4 {
		session.Move(game.Left)
	}
	session.Select()
	if session.State() != game.Lost {
		t.Fatalf("expected the game to be lost, got %v", session.State())
	}

	Draw(screen, DefaultTheme(), session.View(), "", "")

	want := "*   X   !   1   x   X"
	if got := lineAt(screen, 0); got != want {
		t.Fatalf("board row:\n%q\nwant:\n%q", got, want)
	}
	if got := lineAt(screen, 2); got != "Mines: 1  Boom! You lost." {
		t.Fatalf("unexpected status line %q", got)
	}
	if got := lineAt(screen, 3); got != gameOverHint {
		t.Fatalf("unexpected hint line %q", got)
	}
}

func TestDraw_MessageReplacesHint(t *testing.T) {
	screen := newScreen(t)
	session := layoutSession(t, "O.O...")

	Draw(screen, DefaultTheme(), session.View(), "random", "something happened")

	if got := lineAt(screen, 2); got != "Mines: 2  Ready  [director: random]" {
		t.Fatalf("unexpected status line %q", got)
	}
	if got := lineAt(screen, 3); got != "something happened" {
		t.Fatalf("unexpected hint line %q", got)
	}
}

func TestDraw_CustomTheme(t *testing.T) {
	screen := newScreen(t)
	session := layoutSession(t, "O.O...")

	theme := DefaultTheme()
	theme.Symbols.Covered = "#"
	theme.CellWidth = 2
	theme.CellHeight = 1
	Draw(screen, theme, session.View(), "", "")

	if got := lineAt(screen, 0); got != "# # # # # #" {
		t.Fatalf("unexpected board row %q", got)
	}
	if got := lineAt(screen, 1); got != "Mines: 2  Ready" {
		t.Fatalf("unexpected status line %q", got)
	}
}

func TestGame_Run(t *testing.T) {
	screen := newScreen(t)
	session := layoutSession(t, "O.O...")

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	NewGame(screen, session, DefaultTheme(), nullLogger()).Run()

	if !session.HasQuit() {
		t.Fatalf("expected the session to have quit")
	}
	if session.Selection() != (game.Pos{X: 4, Y: 0}) {
		t.Fatalf("unexpected selection %v", session.Selection())
	}
	cell, _ := session.Board().CellAt(4, 0)
	if !cell.Marked() {
		t.Fatalf("expected (4, 0) to be marked")
	}
	if got := runeAt(screen, 16, 0); got != 'F' {
		t.Fatalf("expected the mark to be drawn, got %q", got)
	}
}

func TestGame_RejectedCommandShowsMessage(t *testing.T) {
	screen := newScreen(t)
	session, err := game.New(3, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	log, hook := test.NewNullLogger()

	// The centre's neighbours take up every cell, leaving no room for the mines
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	NewGame(screen, session, DefaultTheme(), log).Run()

	if session.State() != game.NotTouched {
		t.Fatalf("expected the session to stay untouched, got %v", session.State())
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("expected the rejected command to be logged")
	}
	if got := lineAt(screen, 7); !strings.HasPrefix(got, "not enough room") {
		t.Fatalf("unexpected hint line %q", got)
	}
}

func TestGame_ReloadTheme(t *testing.T) {
	screen := newScreen(t)
	session := layoutSession(t, "O.O...")

	theme := DefaultTheme()
	theme.Symbols.Covered = "?"
	if err := ReloadTheme(screen, theme); err != nil {
		t.Fatalf("ReloadTheme: %v", err)
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	NewGame(screen, session, DefaultTheme(), nullLogger()).Run()

	if got := runeAt(screen, 0, 0); got != '?' {
		t.Fatalf("expected the reloaded theme to be drawn, got %q", got)
	}
}

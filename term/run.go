package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/termsweep/game"
)

// Game drives a session from the keys pressed on a terminal screen.
type Game struct {
	screen  tcell.Screen
	session *game.Session
	theme   Theme
	log     logrus.FieldLogger

	// Shown in place of the hint until the next command
	message string
}

func NewGame(screen tcell.Screen, session *game.Session, theme Theme, log logrus.FieldLogger) *Game {
	return &Game{
		screen:  screen,
		session: session,
		theme:   theme,
		log:     log,
	}
}

// Run draws the session and applies key presses to it until the player quits or the
// screen is finalized.
func (g *Game) Run() {
	g.draw()

	for !g.session.HasQuit() {
		switch event := g.screen.PollEvent().(type) {
		case nil:
			return

		case *tcell.EventResize:
			g.screen.Sync()
			g.draw()

		case *tcell.EventInterrupt:
			if theme, ok := event.Data().(Theme); ok {
				g.theme = theme
				g.draw()
			}

		case *tcell.EventKey:
			if g.handleKey(event) && !g.session.HasQuit() {
				g.draw()
			}
		}
	}
}

// handleKey applies the command bound to event and reports whether a redraw is needed.
func (g *Game) handleKey(event *tcell.EventKey) bool {
	var result game.Result
	var err error

	if IsDirectorStep(event) {
		result, err = g.session.RequestDirectorAct()
	} else if command, ok := Translate(event); ok {
		result, err = g.session.Apply(command)
	} else {
		return false
	}

	hadMessage := g.message != ""
	g.message = ""
	if err != nil {
		g.log.WithField("selection", g.session.Selection()).WithError(err).Warn("Command rejected")
		g.message = errorMessage(err)
		return true
	}
	return result.Redraw || hadMessage
}

// ReloadTheme asks a running game to redraw with theme. It is safe to call from any goroutine.
func ReloadTheme(screen tcell.Screen, theme Theme) error {
	return screen.PostEvent(tcell.NewEventInterrupt(theme))
}

func (g *Game) draw() {
	var directorName string
	if director := g.session.Director(); director != nil {
		directorName = director.Name()
	}
	Draw(g.screen, g.theme, g.session.View(), directorName, g.message)
}

func errorMessage(err error) string {
	if errors.Is(err, game.ErrInsufficientSpace) {
		return "not enough room for the mines around this cell, try another one"
	}
	return fmt.Sprintf("error: %v", err)
}

// Open creates and initializes the terminal screen. The caller must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return screen, nil
}

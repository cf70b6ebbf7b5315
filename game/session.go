package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement. Zero picks one from the clock.
	Seed int64
	// Rand replaces the seeded source when set, e.g. with a deterministic shuffler in tests.
	Rand Shuffler

	// Layout starts every game on this board instead of generating one. Its mine count
	// overrides NumMines.
	Layout *BoardSnapshot

	Director Director
	Logger   logrus.FieldLogger

	// OnGameEnd is called once each time a game is won or lost.
	OnGameEnd func(*Session)
}

func NewConfig() Config {
	return Config{
		Width:    Beginner.Width,
		Height:   Beginner.Height,
		NumMines: Beginner.NumMines,
	}
}

// Session owns one board and the selection, and sequences every command applied to them.
type Session struct {
	config   Config
	log      logrus.FieldLogger
	numMines int

	seed int64
	rand *rand.Rand

	board      *Board
	generated  bool
	selection  Pos
	state      State
	losingCell *Pos
	hasQuit    bool
}

// New creates a session with a generated board of the given size.
func New(width, height, numMines int) (*Session, error) {
	config := NewConfig()
	config.Width, config.Height, config.NumMines = width, height, numMines
	return NewSession(config)
}

func NewSession(config Config) (*Session, error) {
	session := &Session{
		config:   config,
		log:      config.Logger,
		numMines: config.NumMines,
		seed:     config.Seed,
	}
	if session.log == nil {
		logger := logrus.New()
		logger.Out = io.Discard
		session.log = logger
	}

	if config.Layout == nil {
		if config.Width <= 0 || config.Height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, config.Width, config.Height)
		}
		maxMines := config.Width*config.Height - minSafeZone(config.Width, config.Height)
		if config.NumMines < 1 || config.NumMines > maxMines {
			return nil, fmt.Errorf("%w: %d mines on a %dx%d board (1 to %d allowed)",
				ErrInsufficientSpace, config.NumMines, config.Width, config.Height, maxMines)
		}
	}

	if session.seed == 0 {
		session.seed = time.Now().UnixNano()
	}
	session.rand = rand.New(rand.NewSource(session.seed))

	if err := session.reset(); err != nil {
		return nil, err
	}
	return session, nil
}

func (session *Session) reset() error {
	if layout := session.config.Layout; layout != nil {
		board, err := layout.CreateBoard(true)
		if err != nil {
			return err
		}
		session.board = board
		session.numMines = board.NumMines()
		session.generated = true
	} else {
		board, err := CreateBlank(session.config.Width, session.config.Height)
		if err != nil {
			return err
		}
		session.board = board
		session.generated = false
	}

	session.selection = Pos{session.board.width / 2, session.board.height / 2}
	session.state = NotTouched
	session.losingCell = nil
	return nil
}

func (session *Session) State() State {
	return session.state
}

func (session *Session) Selection() Pos {
	return session.selection
}

// Board gives read access to the session's board. Callers must not mutate it.
func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Seed() int64 {
	return session.seed
}

func (session *Session) NumMines() int {
	return session.numMines
}

func (session *Session) HasQuit() bool {
	return session.hasQuit
}

func (session *Session) Director() Director {
	return session.config.Director
}

func (session *Session) View() View {
	return newView(session)
}

// Apply dispatches a command to the matching session operation.
func (session *Session) Apply(command Command) (Result, error) {
	switch command.Action {
	case ActionSelect:
		return session.Select()
	case ActionMark:
		return session.Mark(), nil
	case ActionMove:
		return session.Move(command.Direction), nil
	case ActionRestart:
		return session.Restart()
	case ActionQuit:
		return session.Quit(), nil
	default:
		return session.unchanged(), fmt.Errorf("unknown action %v", command.Action)
	}
}

// Select uncovers the selected cell. The first select of a game places the mines, keeping
// the selected cell and its neighbours clear.
func (session *Session) Select() (Result, error) {
	if session.hasQuit || session.state.IsOver() {
		return session.unchanged(), nil
	}

	selection := session.selection
	if session.state == NotTouched {
		if !session.generated {
			if err := Populate(session.board, selection, session.numMines, session.shuffler()); err != nil {
				session.log.WithFields(logrus.Fields{
					"selection": selection,
					"mines":     session.numMines,
				}).WithError(err).Warn("Could not populate board")
				return session.unchanged(), err
			}
			session.generated = true

			session.log.WithFields(logrus.Fields{
				"safe":   selection,
				"mines":  session.numMines,
				"width":  session.board.width,
				"height": session.board.height,
				"seed":   session.seed,
			}).Debug("Populated board")
		}
		session.state = InProgress
	}

	effect, err := Uncover(session.board, selection)
	if err != nil {
		return session.unchanged(), err
	}
	if len(effect.Uncovered) == 0 {
		return session.unchanged(), nil
	}

	session.log.WithFields(logrus.Fields{
		"selection": selection,
		"uncovered": len(effect.Uncovered),
	}).Debug("Uncovered cells")

	if effect.HitMine {
		session.lose(selection)
	} else if HasWon(session.board) {
		session.win()
	}
	return Result{State: session.state, Redraw: true}, nil
}

// Mark toggles the mark on the selected cell, if it is still covered.
func (session *Session) Mark() Result {
	if session.hasQuit || session.state.IsOver() {
		return session.unchanged()
	}

	pos := session.selection
	cell := session.board.cells[pos.Y][pos.X]
	if !cell.covered {
		return session.unchanged()
	}
	if err := session.board.SetMarked(pos.X, pos.Y, !cell.marked); err != nil {
		// The selection never leaves the board
		panic(err)
	}
	return Result{State: session.state, Redraw: true}
}

// Move shifts the selection one cell. Moves past an edge leave it unchanged.
func (session *Session) Move(direction Direction) Result {
	if session.hasQuit || session.state.IsOver() {
		return session.unchanged()
	}

	dx, dy := direction.delta()
	next := Pos{session.selection.X + dx, session.selection.Y + dy}
	if next == session.selection || !session.board.InBounds(next.X, next.Y) {
		return session.unchanged()
	}
	session.selection = next
	return Result{State: session.state, Redraw: true}
}

// Restart recreates the board once a game is won or lost.
func (session *Session) Restart() (Result, error) {
	if session.hasQuit || !session.state.IsOver() {
		return session.unchanged(), nil
	}

	if session.config.Rand == nil {
		session.seed = session.rand.Int63()
		session.rand = rand.New(rand.NewSource(session.seed))
	}
	if err := session.reset(); err != nil {
		return session.unchanged(), err
	}

	session.log.WithField("seed", session.seed).Info("Restarted game")
	return Result{State: session.state, Redraw: true}, nil
}

// Quit ends the session. Every later command is ignored.
func (session *Session) Quit() Result {
	session.hasQuit = true
	return session.unchanged()
}

// RequestDirectorAct asks the configured director for one command and applies it.
func (session *Session) RequestDirectorAct() (Result, error) {
	director := session.config.Director
	if director == nil || session.hasQuit {
		return session.unchanged(), nil
	}

	command, ok := director.Act(session.View())
	if !ok {
		return session.unchanged(), nil
	}
	session.log.WithFields(logrus.Fields{
		"director": director.Name(),
		"command":  command.String(),
	}).Debug("Director acted")
	return session.Apply(command)
}

func (session *Session) shuffler() Shuffler {
	if session.config.Rand != nil {
		return session.config.Rand
	}
	return session.rand
}

func (session *Session) unchanged() Result {
	return Result{State: session.state}
}

func (session *Session) win() {
	session.state = Won
	session.endGame()
}

func (session *Session) lose(pos Pos) {
	session.state = Lost
	session.losingCell = &pos
	RevealMines(session.board)
	session.endGame()
}

func (session *Session) endGame() {
	session.log.WithFields(logrus.Fields{
		"state":     session.state.String(),
		"covered":   session.board.numCovered,
		"mines":     session.numMines,
		"seed":      session.seed,
		"selection": session.selection,
	}).Info("Game ended")

	if session.config.OnGameEnd != nil {
		session.config.OnGameEnd(session)
	}
}

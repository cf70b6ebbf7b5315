package game

type State int

const (
	NotTouched State = iota
	InProgress
	Won
	Lost
)

func (state State) String() string {
	switch state {
	case NotTouched:
		return "not touched"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsOver reports whether the state is terminal (Won or Lost).
func (state State) IsOver() bool {
	return state == Won || state == Lost
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (direction Direction) String() string {
	switch direction {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// delta returns the (dx, dy) offset for a direction. y grows downwards.
func (direction Direction) delta() (int, int) {
	switch direction {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

type Action int

const (
	ActionSelect Action = iota
	ActionMark
	ActionMove
	ActionRestart
	ActionQuit
)

func (action Action) String() string {
	switch action {
	case ActionSelect:
		return "select"
	case ActionMark:
		return "mark"
	case ActionMove:
		return "move"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

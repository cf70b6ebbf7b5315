package game

import "fmt"

// Command is a semantic input, translated from a key press or produced by a Director.
// Select and Mark act on the current selection.
type Command struct {
	Action    Action
	Direction Direction
}

var (
	SelectCommand  = Command{Action: ActionSelect}
	MarkCommand    = Command{Action: ActionMark}
	RestartCommand = Command{Action: ActionRestart}
	QuitCommand    = Command{Action: ActionQuit}
)

func MoveCommand(direction Direction) Command {
	return Command{Action: ActionMove, Direction: direction}
}

func (command Command) String() string {
	if command.Action == ActionMove {
		return fmt.Sprintf("move %s", command.Direction)
	}
	return command.Action.String()
}

// Steer returns the direction that brings a selection at from one step closer to to,
// horizontally first. It returns false once from == to.
func Steer(from, to Pos) (Direction, bool) {
	switch {
	case from.X < to.X:
		return Right, true
	case from.X > to.X:
		return Left, true
	case from.Y < to.Y:
		return Down, true
	case from.Y > to.Y:
		return Up, true
	default:
		return 0, false
	}
}

// Approach returns the move bringing selection towards target, or command once the
// selection is on target.
func Approach(selection, target Pos, command Command) Command {
	if direction, ok := Steer(selection, target); ok {
		return MoveCommand(direction)
	}
	return command
}

// Result is returned by every session command.
type Result struct {
	State State
	// Redraw is set when the command changed anything visible.
	Redraw bool
}

package random

import (
	"math/rand"

	"github.com/they4kman/termsweep/game"
)

// Director selects covered cells at random, walking the selection to each one.
type Director struct {
	rand   *rand.Rand
	target *game.Pos
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Name() string {
	return "random"
}

func (director *Director) Act(view game.View) (game.Command, bool) {
	if view.State.IsOver() {
		director.target = nil
		return game.Command{}, false
	}

	if director.target == nil || !isCandidate(view.At(*director.target)) {
		target, ok := director.Pick(view)
		if !ok {
			return game.Command{}, false
		}
		director.target = &target
	}

	command := game.Approach(view.Selection, *director.target, game.SelectCommand)
	if command == game.SelectCommand {
		director.target = nil
	}
	return command, true
}

// Pick returns a random covered, unmarked cell.
func (director *Director) Pick(view game.View) (game.Pos, bool) {
	var candidates []game.Pos
	for y, row := range view.Cells {
		for x, cell := range row {
			if isCandidate(cell) {
				candidates = append(candidates, game.Pos{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return game.Pos{}, false
	}
	return candidates[director.rand.Intn(len(candidates))], true
}

func isCandidate(cell game.CellView) bool {
	return cell.Covered && !cell.Marked
}

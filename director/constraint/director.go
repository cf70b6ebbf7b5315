package constraint

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"

	"github.com/gammazero/deque"

	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Number of passes made over the observations to derive new ones from overlapping pairs
const simplifyRounds = 4

// Director plays by deduction, falling back to the least risky cell (and then a random
// one) when nothing can be deduced.
type Director struct {
	rand *rand.Rand
	plan deque.Deque[step]
}

type step struct {
	pos     game.Pos
	command game.Command
}

// applies reports whether step still makes sense on view: its cell must be covered and unmarked.
func (s step) applies(view game.View) bool {
	cell := view.At(s.pos)
	return cell.Covered && !cell.Marked
}

type actor func(view game.View, observations Observations) []step

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Name() string {
	return "constraint"
}

func (director *Director) Act(view game.View) (game.Command, bool) {
	if view.State.IsOver() {
		director.plan.Clear()
		return game.Command{}, false
	}

	for director.plan.Len() > 0 && !director.plan.Front().applies(view) {
		director.plan.PopFront()
	}
	if director.plan.Len() == 0 {
		for _, s := range director.decide(view) {
			director.plan.PushBack(s)
		}
	}
	if director.plan.Len() == 0 {
		return game.Command{}, false
	}

	next := director.plan.Front()
	command := game.Approach(view.Selection, next.pos, next.command)
	if command == next.command {
		director.plan.PopFront()
	}
	return command, true
}

func (director *Director) decide(view game.View) []step {
	if view.State == game.NotTouched {
		// The first selection is always safe
		return []step{{pos: view.Selection, command: game.SelectCommand}}
	}

	observations := Observe(view)
	for i := 0; i < simplifyRounds; i++ {
		observations = observations.simplify()
	}

	actors := []actor{
		director.actDeliberate,
		director.actLowestProbability,
		director.actRandom,
	}
	for _, act := range actors {
		if steps := act(view, observations); len(steps) > 0 {
			return steps
		}
	}
	return nil
}

// actDeliberate marks every cell known to be a mine and selects every cell known to be safe.
func (director *Director) actDeliberate(_ game.View, observations Observations) []step {
	mines := collections.NewSet[game.Pos]()
	safe := collections.NewSet[game.Pos]()

	for _, observation := range observations {
		if observation.numMines == observation.cells.Len() {
			for pos := range observation.cells {
				mines.Add(pos)
			}
		} else if observation.numMines == 0 {
			for pos := range observation.cells {
				safe.Add(pos)
			}
		}
	}

	var steps []step
	for pos := range safe {
		if !mines.Contains(pos) {
			steps = append(steps, step{pos: pos, command: game.SelectCommand})
		}
	}
	for pos := range mines {
		if !safe.Contains(pos) {
			steps = append(steps, step{pos: pos, command: game.MarkCommand})
		}
	}
	slices.SortFunc(steps, func(a, b step) int {
		return comparePos(a.pos, b.pos)
	})
	return steps
}

// actLowestProbability selects the cell least likely to hold a mine. A cell is rated by
// the most pessimistic observation covering it.
func (director *Director) actLowestProbability(_ game.View, observations Observations) []step {
	cellProbabilities := make(map[game.Pos]float32)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for pos := range observation.cells {
			if pastProbability, ok := cellProbabilities[pos]; !ok || probability > pastProbability {
				cellProbabilities[pos] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return nil
	}

	lowestProbability := float32(math.Inf(1))
	var lowestProbabilityCells []game.Pos
	for pos, probability := range cellProbabilities {
		if probability < lowestProbability {
			lowestProbability = probability
			lowestProbabilityCells = lowestProbabilityCells[:0]
		}
		if probability == lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, pos)
		}
	}

	slices.SortFunc(lowestProbabilityCells, comparePos)
	pos := lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))]
	return []step{{pos: pos, command: game.SelectCommand}}
}

func (director *Director) actRandom(view game.View, _ Observations) []step {
	var candidates []game.Pos
	for y, row := range view.Cells {
		for x, cell := range row {
			if cell.Covered && !cell.Marked {
				candidates = append(candidates, game.Pos{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	pos := candidates[director.rand.Intn(len(candidates))]
	return []step{{pos: pos, command: game.SelectCommand}}
}

// Observation states that exactly numMines of cells are mines.
type Observation struct {
	// origin is the uncovered cell the observation was read from, nil if derived.
	origin   *game.Pos
	numMines int
	cells    collections.Set[game.Pos]
}

func (observation Observation) String() string {
	positions := make([]game.Pos, 0, observation.cells.Len())
	for pos := range observation.cells {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, comparePos)

	var cellsRepr strings.Builder
	for i, pos := range positions {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(pos.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(observation.cells.Len())
}

type Observations []*Observation

// Observe reads one observation from every uncovered number on the board. Marked
// neighbours are taken at their word and counted as mines.
func Observe(view game.View) Observations {
	var observations Observations
	for y, row := range view.Cells {
		for x, cell := range row {
			if cell.Covered || cell.Kind.NumMines() == 0 {
				continue
			}

			origin := game.Pos{X: x, Y: y}
			observation := &Observation{
				origin:   &origin,
				numMines: cell.Kind.NumMines(),
				cells:    collections.NewSet[game.Pos](),
			}
			for _, neighbor := range view.NeighborsOf(origin) {
				neighborCell := view.At(neighbor)
				if !neighborCell.Covered {
					continue
				}
				if neighborCell.Marked {
					observation.numMines--
				} else {
					observation.cells.Add(neighbor)
				}
			}
			observations = observations.add(observation)
		}
	}
	return observations
}

// add appends observation unless it is vacuous, contradictory, or covers the same
// cells as one already held.
func (observations Observations) add(observation *Observation) Observations {
	if observation.cells.Len() == 0 {
		return observations
	}
	// Only possible when marks are wrong
	if observation.numMines < 0 || observation.numMines > observation.cells.Len() {
		return observations
	}
	for _, other := range observations {
		if other.cells.Equal(observation.cells) {
			return observations
		}
	}
	return append(observations, observation)
}

// simplify derives new observations from every overlapping pair.
//
// When a's cells are a subset of b's, the cells only b covers hold exactly the
// difference of their mine counts. When they merely overlap, the overlap holds at most
// a.numMines, so the cells only b covers hold at least b.numMines - a.numMines: if that
// is all of them, they are all mines.
func (observations Observations) simplify() Observations {
	simplified := slices.Clone(observations)
	for _, a := range observations {
		for _, b := range observations {
			if a == b {
				continue
			}

			onlyB := b.cells.Difference(a.cells)
			if onlyB.Len() == b.cells.Len() {
				continue
			}
			occludedMines := b.numMines - a.numMines

			if a.cells.IsSubset(b.cells) {
				simplified = simplified.add(&Observation{numMines: occludedMines, cells: onlyB})
			} else if occludedMines > 0 && occludedMines == onlyB.Len() {
				simplified = simplified.add(&Observation{numMines: occludedMines, cells: onlyB})
			}
		}
	}
	return simplified
}

func comparePos(a, b game.Pos) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

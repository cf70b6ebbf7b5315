package game

import (
	"fmt"

	"github.com/they4kman/termsweep/util/collections"
)

// Shuffler is the source of randomness for mine placement. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Populate places numMines mines on the board, never on safe or any of its neighbours, then
// computes adjacency counts for every other cell. Kinds set before the call are discarded.
func Populate(board *Board, safe Pos, numMines int, rng Shuffler) error {
	if !board.InBounds(safe.X, safe.Y) {
		return board.outOfBounds(safe.X, safe.Y)
	}

	excluded := safeZone(board, safe)
	numEligible := board.NumCells() - excluded.Len()
	if numMines < 0 || numMines > numEligible {
		return fmt.Errorf("%w: %d mines, %d eligible cells around %v",
			ErrInsufficientSpace, numMines, numEligible, safe)
	}

	// Store eligible cell indexes, to shuffle and fill with mines
	eligible := make([]int, 0, numEligible)
	for idx := range board.NumCells() {
		if !excluded.Contains(idx) {
			eligible = append(eligible, idx)
		}
	}

	for pos := range board.Cells() {
		board.cells[pos.Y][pos.X].kind = Empty
	}
	board.numMines = 0

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	for _, idx := range eligible[:numMines] {
		pos := board.position(idx)
		if err := board.SetKind(pos.X, pos.Y, Mine); err != nil {
			return err
		}
	}

	ComputeAdjacency(board)
	return nil
}

// ComputeAdjacency sets every non-mine cell to Adjacent(n), n being its number of mine
// neighbours, or Empty if it has none.
func ComputeAdjacency(board *Board) {
	for y, row := range board.cells {
		for x := range row {
			cell := &row[x]
			if cell.kind.IsMine() {
				continue
			}

			numMines := 0
			for _, neighbor := range board.neighbors(x, y) {
				if neighbor.Kind.IsMine() {
					numMines++
				}
			}
			cell.kind = Adjacent(numMines)
		}
	}
}

// safeZone returns the indexes of pos and its neighbours.
func safeZone(board *Board, pos Pos) collections.Set[int] {
	zone := collections.NewSet(board.index(pos))
	for _, neighbor := range board.neighbors(pos.X, pos.Y) {
		zone.Add(board.index(neighbor.Pos))
	}
	return zone
}

// minSafeZone is the smallest safe zone a board can have, found at its corners.
func minSafeZone(width, height int) int {
	return min(width, 2) * min(height, 2)
}

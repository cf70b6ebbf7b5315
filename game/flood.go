package game

import "github.com/gammazero/deque"

// Effect describes what a single Uncover call changed.
type Effect struct {
	// Uncovered lists every cell uncovered by the call, origin first.
	Uncovered []Pos
	// HitMine is set when the origin was a mine.
	HitMine bool
}

// Uncover uncovers origin. If origin is Empty, the connected region of Empty cells around
// it is uncovered along with its bordering Adjacent cells. Already uncovered cells are left
// alone, so a second call on the same cell is a no-op.
func Uncover(board *Board, origin Pos) (Effect, error) {
	var effect Effect

	cell, err := board.CellAt(origin.X, origin.Y)
	if err != nil {
		return effect, err
	}
	if !cell.covered {
		return effect, nil
	}

	uncover := func(pos Pos) Kind {
		effect.Uncovered = append(effect.Uncovered, pos)
		return board.uncover(pos)
	}

	kind := uncover(origin)
	if kind.IsMine() {
		effect.HitMine = true
		return effect, nil
	}
	if !kind.IsEmpty() {
		return effect, nil
	}

	// Cells are uncovered as they are queued, so the covered flag marks them visited
	var queue deque.Deque[Pos]
	queue.PushBack(origin)
	for queue.Len() > 0 {
		pos := queue.PopFront()
		for _, neighbor := range board.neighbors(pos.X, pos.Y) {
			if !board.cells[neighbor.Y][neighbor.X].covered {
				continue
			}
			if uncover(neighbor.Pos).IsEmpty() {
				queue.PushBack(neighbor.Pos)
			}
		}
	}

	return effect, nil
}

// HasWon reports whether every non-mine cell is uncovered while every mine stays covered.
func HasWon(board *Board) bool {
	if board.numCovered != board.numMines {
		return false
	}
	for _, cell := range board.Cells() {
		if cell.kind.IsMine() && !cell.covered {
			return false
		}
	}
	return true
}

// RevealMines uncovers every mine, returning the positions uncovered by the call.
func RevealMines(board *Board) []Pos {
	var revealed []Pos
	for pos, cell := range board.Cells() {
		if cell.kind.IsMine() && cell.covered {
			board.uncover(pos)
			revealed = append(revealed, pos)
		}
	}
	return revealed
}

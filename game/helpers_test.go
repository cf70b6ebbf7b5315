package game

import (
	"strings"
	"testing"
)

// inOrder leaves the cells in order, so mines land on the first eligible cells in
// row-major order.
type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

// boardFromRows builds a fresh board from snapshot rows, e.g. "..O" for a mine in the
// third column.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	board, err := (&BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}).CreateBoard(true)
	if err != nil {
		t.Fatalf("could not build board from %q: %v", rows, err)
	}
	return board
}

func layoutConfig(rows ...string) Config {
	config := NewConfig()
	config.Layout = &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	return config
}

func mustCell(t *testing.T, board *Board, x, y int) Cell {
	t.Helper()
	cell, err := board.CellAt(x, y)
	if err != nil {
		t.Fatalf("CellAt(%d, %d): %v", x, y, err)
	}
	return cell
}

// checkAdjacency verifies every non-mine cell counts its mine neighbours correctly.
func checkAdjacency(t *testing.T, board *Board) {
	t.Helper()
	for pos, cell := range board.Cells() {
		if cell.Kind().IsMine() {
			continue
		}
		neighbors, err := board.Neighbors(pos.X, pos.Y)
		if err != nil {
			t.Fatalf("Neighbors(%v): %v", pos, err)
		}
		numMines := 0
		for _, neighbor := range neighbors {
			if neighbor.Kind.IsMine() {
				numMines++
			}
		}
		if cell.Kind().NumMines() != numMines {
			t.Fatalf("cell %v is %v, but has %d mine neighbours", pos, cell.Kind(), numMines)
		}
		if numMines == 0 && !cell.Kind().IsEmpty() {
			t.Fatalf("cell %v has no mine neighbours but is %v", pos, cell.Kind())
		}
	}
}

func coveredPositions(board *Board) map[Pos]bool {
	covered := make(map[Pos]bool)
	for pos, cell := range board.Cells() {
		if cell.Covered() {
			covered[pos] = true
		}
	}
	return covered
}

package game

import (
	"fmt"
	"iter"
)

// neighborOffsets enumerates neighbours as NW, W, SW, N, S, NE, E, SE.
var neighborOffsets = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	width, height int // in number of cells
	cells         [][]Cell

	numMines   int
	numCovered int
	numMarked  int
}

// CreateBlank returns a board where every cell is covered, unmarked and Empty.
func CreateBlank(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	board := Board{
		width:      width,
		height:     height,
		cells:      make([][]Cell, height),
		numCovered: width * height,
	}
	for y := range height {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blankCell()
		}
		board.cells[y] = row
	}

	return &board, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

// NumMines is the number of cells currently of kind Mine.
func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCovered() int {
	return board.numCovered
}

func (board *Board) NumMarked() int {
	return board.numMarked
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

func (board *Board) CellAt(x, y int) (Cell, error) {
	if !board.InBounds(x, y) {
		return Cell{}, board.outOfBounds(x, y)
	}
	return board.cells[y][x], nil
}

// Neighbors returns the up to 8 existing neighbours of (x, y), in NW, W, SW, N, S, NE, E, SE
// order.
func (board *Board) Neighbors(x, y int) ([]Neighbor, error) {
	if !board.InBounds(x, y) {
		return nil, board.outOfBounds(x, y)
	}
	return board.neighbors(x, y), nil
}

func (board *Board) neighbors(x, y int) []Neighbor {
	neighbors := make([]Neighbor, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		nx, ny := x+offset.X, y+offset.Y
		if board.InBounds(nx, ny) {
			neighbors = append(neighbors, Neighbor{
				Pos:  Pos{nx, ny},
				Kind: board.cells[ny][nx].kind,
			})
		}
	}
	return neighbors
}

// Cells yields every cell in row-major order.
func (board *Board) Cells() iter.Seq2[Pos, Cell] {
	return func(yield func(Pos, Cell) bool) {
		for y, row := range board.cells {
			for x, cell := range row {
				if !yield(Pos{x, y}, cell) {
					return
				}
			}
		}
	}
}

func (board *Board) SetKind(x, y int, kind Kind) error {
	cell, err := board.cell(x, y)
	if err != nil {
		return err
	}

	if cell.kind.IsMine() != kind.IsMine() {
		if kind.IsMine() {
			board.numMines++
		} else {
			board.numMines--
		}
	}
	cell.kind = kind
	return nil
}

func (board *Board) SetCovered(x, y int, covered bool) error {
	cell, err := board.cell(x, y)
	if err != nil {
		return err
	}

	if cell.covered != covered {
		if covered {
			board.numCovered++
		} else {
			board.numCovered--
		}
	}
	cell.covered = covered
	return nil
}

func (board *Board) SetMarked(x, y int, marked bool) error {
	cell, err := board.cell(x, y)
	if err != nil {
		return err
	}

	if cell.marked != marked {
		if marked {
			board.numMarked++
		} else {
			board.numMarked--
		}
	}
	cell.marked = marked
	return nil
}

// uncover clears the covered and marked flags of an in-bounds cell, returning its kind.
func (board *Board) uncover(pos Pos) Kind {
	cell := &board.cells[pos.Y][pos.X]
	if cell.marked {
		cell.marked = false
		board.numMarked--
	}
	if cell.covered {
		cell.covered = false
		board.numCovered--
	}
	return cell.kind
}

func (board *Board) cell(x, y int) (*Cell, error) {
	if !board.InBounds(x, y) {
		return nil, board.outOfBounds(x, y)
	}
	return &board.cells[y][x], nil
}

func (board *Board) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, x, y, board.width, board.height)
}

// index and position convert between (x, y) and row-major cell indexes.
func (board *Board) index(pos Pos) int {
	return pos.Y*board.width + pos.X
}

func (board *Board) position(idx int) Pos {
	return Pos{idx % board.width, idx / board.width}
}

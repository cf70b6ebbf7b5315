package game

import "fmt"

// Kind is the content of a cell: Mine, Empty, or the number of adjacent mines (1-8).
type Kind int8

const (
	Mine  Kind = -1
	Empty Kind = 0
)

// Adjacent returns the kind of a cell bordering n mines. Adjacent(0) is Empty.
func Adjacent(n int) Kind {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("adjacent mine count out of range: %d", n))
	}
	return Kind(n)
}

func (kind Kind) IsMine() bool {
	return kind == Mine
}

func (kind Kind) IsEmpty() bool {
	return kind == Empty
}

// NumMines is the number of adjacent mines for Empty/Adjacent kinds, 0 for Mine.
func (kind Kind) NumMines() int {
	if kind < 0 {
		return 0
	}
	return int(kind)
}

func (kind Kind) String() string {
	switch {
	case kind == Mine:
		return "Mine"
	case kind == Empty:
		return "Empty"
	default:
		return fmt.Sprintf("Adjacent(%d)", kind)
	}
}

type Cell struct {
	covered bool
	marked  bool
	kind    Kind
}

func blankCell() Cell {
	return Cell{covered: true, kind: Empty}
}

func (cell Cell) Covered() bool {
	return cell.covered
}

func (cell Cell) Marked() bool {
	return cell.marked
}

func (cell Cell) Kind() Kind {
	return cell.kind
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, covered=%v, marked=%v)", cell.kind, cell.covered, cell.marked)
}

// Pos is a grid coordinate. x grows to the right, y grows downwards.
type Pos struct {
	X, Y int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

type Neighbor struct {
	Pos
	Kind Kind
}

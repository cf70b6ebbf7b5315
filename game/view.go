package game

// CellView is what a renderer may know about a cell. Kind is Empty unless Known.
type CellView struct {
	Covered bool
	Marked  bool
	Known   bool
	Kind    Kind
}

// View is a read-only copy of a session, safe to hold on to after further commands.
type View struct {
	Width, Height int
	Cells         [][]CellView // indexed [y][x]
	Selection     Pos
	State         State
	NumMines      int
	NumMarked     int

	// LosingCell is the mine that ended the game, if it was lost.
	LosingCell *Pos
}

func (view View) InBounds(pos Pos) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < view.Width && pos.Y < view.Height
}

func (view View) At(pos Pos) CellView {
	return view.Cells[pos.Y][pos.X]
}

// NeighborsOf returns the in-bounds neighbours of pos, in the same order as Board.Neighbors.
func (view View) NeighborsOf(pos Pos) []Pos {
	neighbors := make([]Pos, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := Pos{pos.X + offset.X, pos.Y + offset.Y}
		if view.InBounds(neighbor) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// MinesRemaining is the mine count minus the number of marks. It goes negative when
// more cells are marked than there are mines.
func (view View) MinesRemaining() int {
	return view.NumMines - view.NumMarked
}

func newView(session *Session) View {
	board := session.board
	revealAll := session.state.IsOver()

	view := View{
		Width:     board.width,
		Height:    board.height,
		Cells:     make([][]CellView, board.height),
		Selection: session.selection,
		State:     session.state,
		NumMines:  session.numMines,
		NumMarked: board.numMarked,
	}
	for y, row := range board.cells {
		viewRow := make([]CellView, len(row))
		for x, cell := range row {
			known := !cell.covered || revealAll
			viewRow[x] = CellView{
				Covered: cell.covered,
				Marked:  cell.marked,
				Known:   known,
			}
			if known {
				viewRow[x].Kind = cell.kind
			}
		}
		view.Cells[y] = viewRow
	}
	if session.losingCell != nil {
		losingCell := *session.losingCell
		view.LosingCell = &losingCell
	}

	return view
}

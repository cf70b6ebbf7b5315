package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Serialized cell characters
const (
	snapshotMineUncovered = '*'
	snapshotMineMarked    = 'F'
	snapshotMineCovered   = 'O'
	snapshotMarked        = 'f'
	snapshotUncovered     = '.'
	snapshotCovered       = '#'
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	var builder strings.Builder
	for y, row := range board.cells {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for _, cell := range row {
			builder.WriteRune(cell.serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: builder.String(),
	}
}

func (cell Cell) serialize() rune {
	switch {
	case cell.kind.IsMine():
		switch {
		case !cell.covered:
			return snapshotMineUncovered
		case cell.marked:
			return snapshotMineMarked
		default:
			return snapshotMineCovered
		}
	case cell.marked:
		return snapshotMarked
	case !cell.covered:
		return snapshotUncovered
	default:
		return snapshotCovered
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadSnapshot(string(in))
}

// CreateBoard rebuilds the board described by the snapshot, with adjacency recomputed.
// When fresh is set, every cell is covered and unmarked.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidSnapshot)
	}

	board, err := CreateBlank(width, len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidSnapshot, y, len(row), width)
		}
		for x, c := range []byte(row) {
			cell := &board.cells[y][x]
			if !cell.deserialize(rune(c)) {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidSnapshot, c, x, y)
			}
			if fresh {
				cell.covered = true
				cell.marked = false
			}
		}
	}

	board.recount()
	ComputeAdjacency(board)
	return board, nil
}

func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case snapshotMineUncovered, snapshotMineMarked, snapshotMineCovered:
		cell.kind = Mine
		cell.covered = c != snapshotMineUncovered
		cell.marked = c == snapshotMineMarked
	case snapshotMarked:
		cell.marked = true
	case snapshotUncovered:
		cell.covered = false
	case snapshotCovered:
		cell.covered = true
	default:
		return false
	}
	return true
}

// recount rebuilds the mine, covered and marked counters after direct cell edits.
func (board *Board) recount() {
	board.numMines, board.numCovered, board.numMarked = 0, 0, 0
	for _, cell := range board.Cells() {
		if cell.kind.IsMine() {
			board.numMines++
		}
		if cell.covered {
			board.numCovered++
		}
		if cell.marked {
			board.numMarked++
		}
	}
}

// SaveSnapshot writes the final board of a finished game into dir, creating dir if
// needed, and returns the path written.
func SaveSnapshot(dir string, session *Session, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	serialized, err := session.Board().Snapshot(session.Seed()).Serialize()
	if err != nil {
		return "", err
	}

	base := generateSnapshotFilename(session.State(), t)
	for attempt := 0; ; attempt++ {
		filename := base + ".yaml"
		if attempt > 0 {
			filename = fmt.Sprintf("%s_%d.yaml", base, attempt)
		}
		path := filepath.Join(dir, filename)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}

		_, err = file.WriteString(serialized)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		return path, err
	}
}

func generateSnapshotFilename(state State, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	return filenameBuilder.String()
}

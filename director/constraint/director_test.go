package constraint

import (
	"strings"
	"testing"

	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

func layoutSession(t *testing.T, director game.Director, rows ...string) *game.Session {
	t.Helper()
	snapshot, err := game.LoadSnapshot("board: |-\n  " + strings.Join(rows, "\n  ") + "\n")
	if err != nil {
		t.Fatal(err)
	}
	config := game.NewConfig()
	config.Layout = snapshot
	config.Director = director
	session, err := game.NewSession(config)
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func observation(numMines int, cells ...game.Pos) *Observation {
	return &Observation{numMines: numMines, cells: collections.NewSet(cells...)}
}

func TestDirector_FirstActionSelects(t *testing.T) {
	session := layoutSession(t, New(1), "...", ".O.", "...")
	command, ok := New(1).Act(session.View())
	if !ok || command != game.SelectCommand {
		t.Fatalf("expected the first action to select, got %v (%t)", command, ok)
	}
}

func TestDirector_SolvesByDeduction(t *testing.T) {
	// (1, 0) is enclosed by numbers, and only deduction proves it safe
	session := layoutSession(t, New(1),
		"O.O..",
		".....",
		".....",
		".....",
	)

	for steps := 0; !session.State().IsOver(); steps++ {
		if steps > 100 {
			t.Fatalf("director did not finish the game")
		}
		if _, err := session.RequestDirectorAct(); err != nil {
			t.Fatalf("RequestDirectorAct: %v", err)
		}
	}
	if session.State() != game.Won {
		t.Fatalf("expected the director to win, got %v", session.State())
	}
}

func TestActDeliberate_SubsetRule(t *testing.T) {
	a, b, c := game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0}, game.Pos{X: 2, Y: 0}
	observations := Observations{
		observation(1, a, b),
		observation(2, a, b, c),
	}

	director := New(1)
	if steps := director.actDeliberate(game.View{}, observations); len(steps) != 0 {
		t.Fatalf("nothing should be deducible before simplifying, got %v", steps)
	}

	steps := director.actDeliberate(game.View{}, observations.simplify())
	if len(steps) != 1 || steps[0].pos != c || steps[0].command != game.MarkCommand {
		t.Fatalf("expected to mark %v, got %v", c, steps)
	}
}

func TestActDeliberate_SafeCells(t *testing.T) {
	a, b, c := game.Pos{X: 0, Y: 1}, game.Pos{X: 1, Y: 0}, game.Pos{X: 2, Y: 0}
	observations := Observations{
		observation(1, a),
		observation(1, a, b, c),
	}

	steps := New(1).actDeliberate(game.View{}, observations.simplify())
	want := []step{
		{pos: b, command: game.SelectCommand},
		{pos: c, command: game.SelectCommand},
		{pos: a, command: game.MarkCommand},
	}
	if len(steps) != len(want) {
		t.Fatalf("expected %v, got %v", want, steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %v, got %v", i, want[i], steps[i])
		}
	}
}

func TestSimplify_Overlap(t *testing.T) {
	// At most one mine among the shared cells leaves both of b's own cells as mines
	a := observation(1, game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0}, game.Pos{X: 0, Y: 1})
	b := observation(3, game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0}, game.Pos{X: 2, Y: 0}, game.Pos{X: 3, Y: 0})

	simplified := Observations{a, b}.simplify()
	want := collections.NewSet(game.Pos{X: 2, Y: 0}, game.Pos{X: 3, Y: 0})
	for _, observation := range simplified {
		if observation.cells.Equal(want) && observation.numMines == 2 {
			return
		}
	}
	t.Fatalf("expected a derived observation of 2 mines in %v, got %v", want, simplified)
}

func TestActLowestProbability(t *testing.T) {
	observations := Observations{
		observation(1, game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0}),
		observation(1, game.Pos{X: 1, Y: 0}, game.Pos{X: 2, Y: 0}, game.Pos{X: 3, Y: 0}, game.Pos{X: 4, Y: 0}),
	}
	safest := collections.NewSet(game.Pos{X: 2, Y: 0}, game.Pos{X: 3, Y: 0}, game.Pos{X: 4, Y: 0})

	director := New(7)
	for i := 0; i < 10; i++ {
		steps := director.actLowestProbability(game.View{}, observations)
		if len(steps) != 1 || steps[0].command != game.SelectCommand {
			t.Fatalf("expected a single select, got %v", steps)
		}
		if !safest.Contains(steps[0].pos) {
			t.Fatalf("%v is not among the least likely mines", steps[0].pos)
		}
	}
}

func TestObserve_CountsMarks(t *testing.T) {
	session := layoutSession(t, nil,
		"O.O..",
		".....",
		".....",
		".....",
	)
	session.Select()
	for range 2 {
		session.Move(game.Up)
	}
	session.Mark() // (2, 0)

	for _, observation := range Observe(session.View()) {
		if observation.origin == nil || *observation.origin != (game.Pos{X: 2, Y: 1}) {
			continue
		}
		want := collections.NewSet(game.Pos{X: 1, Y: 0})
		if observation.numMines != 0 || !observation.cells.Equal(want) {
			t.Fatalf("unexpected observation %v", observation)
		}
		return
	}
	t.Fatalf("no observation read from (2, 1)")
}

func TestObservation_String(t *testing.T) {
	origin := game.Pos{X: 1, Y: 2}
	observation := Observation{
		origin:   &origin,
		numMines: 1,
		cells:    collections.NewSet(game.Pos{X: 3, Y: 4}, game.Pos{X: 0, Y: 4}),
	}
	if got, want := observation.String(), "Obs[  (1, 2), 1 ε (0, 4), (3, 4)]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

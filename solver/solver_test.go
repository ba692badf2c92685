package solver

import (
	"testing"

	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/cut"
	"github.com/kuragecore/diecore/die"
	"github.com/kuragecore/diecore/oplog"
)

// TestSolve_S1_SingleSwap reproduces scenario S1.
func TestSolve_S1_SingleSwap(t *testing.T) {
	p := Problem{Board: ProblemBoard{
		Width: 1, Height: 2,
		Start: []string{"1", "0"},
		Goal:  []string{"0", "1"},
	}}
	answer, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if answer.N == 0 {
		t.Fatalf("expected at least one operation")
	}
	requireReplayMatchesGoal(t, p, answer)
}

// TestSolve_S5_IdentityEmitsEmptyLog reproduces scenario S5.
func TestSolve_S5_IdentityEmitsEmptyLog(t *testing.T) {
	p := Problem{Board: ProblemBoard{
		Width: 4, Height: 1,
		Start: []string{"0123"},
		Goal:  []string{"0123"},
	}}
	answer, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if answer.N != 0 {
		t.Fatalf("answer.N = %d; want 0", answer.N)
	}
}

// TestSolve_S6_ReverseRow reproduces scenario S6.
func TestSolve_S6_ReverseRow(t *testing.T) {
	p := Problem{Board: ProblemBoard{
		Width: 4, Height: 1,
		Start: []string{"0123"},
		Goal:  []string{"3210"},
	}}
	answer, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	requireReplayMatchesGoal(t, p, answer)
}

// TestSolve_S3_MixedBoard reproduces scenario S3: the driver must
// converge and every logged op must reference a valid direction code.
func TestSolve_S3_MixedBoard(t *testing.T) {
	p := Problem{Board: ProblemBoard{
		Width: 6, Height: 4,
		Start: []string{"220103", "213033", "022103", "322033"},
		Goal:  []string{"000000", "111222", "222233", "333333"},
	}}
	answer, err := Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, op := range answer.Ops {
		if op.S < 0 || op.S > 3 {
			t.Fatalf("op %+v has invalid direction code", op)
		}
	}
	requireReplayMatchesGoal(t, p, answer)
}

// requireReplayMatchesGoal checks property P3: replaying the answer's
// ops from the problem's start board reaches its goal board exactly.
// It rebuilds the catalog the same way NewSession does so op.P ids
// resolve to the same dies the solver used.
func requireReplayMatchesGoal(t *testing.T, p Problem, answer oplog.Answer) {
	t.Helper()

	work, err := board.FromRows(p.Board.Start)
	if err != nil {
		t.Fatalf("FromRows(start): %v", err)
	}
	goal, err := board.FromRows(p.Board.Goal)
	if err != nil {
		t.Fatalf("FromRows(goal): %v", err)
	}
	catalog, err := die.BuildStandardCatalog()
	if err != nil {
		t.Fatalf("BuildStandardCatalog: %v", err)
	}
	for _, pat := range p.General.Patterns {
		d, err := die.NewDieFromRows(pat.P, pat.Cells)
		if err != nil {
			t.Fatalf("NewDieFromRows: %v", err)
		}
		catalog.AddGeneral(d)
	}

	for _, op := range answer.Ops {
		d, err := catalog.ByID(op.P)
		if err != nil {
			t.Fatalf("ByID(%d): %v", op.P, err)
		}
		anchor := board.Cell{X: op.X, Y: op.Y}
		if err := cut.ApplyScratch(work, d, anchor, board.Direction(op.S)); err != nil {
			t.Fatalf("ApplyScratch(%+v): %v", op, err)
		}
	}

	if !work.Equal(goal) {
		t.Fatalf("replayed board = %v; want goal %v", work.Cells, goal.Cells)
	}
}

package cut

import (
	"testing"

	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/die"
	"github.com/kuragecore/diecore/oplog"
)

// TestApply_S1_SingleSwapRight reproduces scenario S1: a one-row board
// [1,0] becomes [0,1] via a single unit-die RIGHT shift.
func TestApply_S1_SingleSwapRight(t *testing.T) {
	b, _ := board.FromRows([]string{"10"})
	d, _ := die.NewStandardDie(1, 1, die.Full)
	var log oplog.Log

	// Anchor the unit die at (1,0); RIGHT writes the row back as
	// covered++uncovered, so the covered 0 moves to the front of the row.
	info, err := Apply(b, d, board.Cell{X: 1, Y: 0}, board.Right, &log)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if info.P != 1 || info.S != board.Right {
		t.Fatalf("info = %+v", info)
	}
	if b.At(0, 0) != 0 || b.At(1, 0) != 1 {
		t.Fatalf("board after Right-shift = %v; want [0,1]", b.Cells)
	}
	if log.Len() != 1 {
		t.Fatalf("log.Len() = %d; want 1", log.Len())
	}
}

// TestApply_OverhangingAnchor_ClipsToSingleCell checks the clipping
// contract behind scenario S4: a 2x2 Full die anchored at (-1,-1) on a
// 4x4 board overlaps the board only at (0,0) (rows/cols -1 fall off the
// edge), so RIGHT degenerates to a one-cell rotation of row 0 alone and
// the board is otherwise unchanged.
func TestApply_OverhangingAnchor_ClipsToSingleCell(t *testing.T) {
	b, _ := board.FromRows([]string{"0123", "3210", "0123", "3210"})
	d, _ := die.NewStandardDie(9, 2, die.Full)
	var log oplog.Log

	info, err := Apply(b, d, board.Cell{X: -1, Y: -1}, board.Right, &log)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if info.X != -1 || info.Y != -1 {
		t.Fatalf("info anchor = (%d,%d); want (-1,-1)", info.X, info.Y)
	}
	want, _ := board.FromRows([]string{"0123", "3210", "0123", "3210"})
	if !b.Equal(want) {
		t.Fatalf("single covered cell should leave the board unchanged: %v", b.Cells)
	}
}

// TestApply_OutOfBounds checks rejection when the anchor covers nothing.
func TestApply_OutOfBounds(t *testing.T) {
	b, _ := board.FromRows([]string{"01", "23"})
	d, _ := die.NewStandardDie(1, 2, die.Full)
	if _, err := Apply(b, d, board.Cell{X: 5, Y: 5}, board.Up, nil); err != ErrOutOfBounds {
		t.Fatalf("err = %v; want ErrOutOfBounds", err)
	}
	if _, err := Apply(b, d, board.Cell{X: -2, Y: 0}, board.Up, nil); err != ErrOutOfBounds {
		t.Fatalf("err = %v; want ErrOutOfBounds", err)
	}
}

// TestApply_UnsupportedDirection checks direction validation.
func TestApply_UnsupportedDirection(t *testing.T) {
	b, _ := board.FromRows([]string{"01", "23"})
	d, _ := die.NewStandardDie(1, 1, die.Full)
	if _, err := Apply(b, d, board.Cell{X: 0, Y: 0}, board.Direction(99), nil); err != ErrUnsupportedDirection {
		t.Fatalf("err = %v; want ErrUnsupportedDirection", err)
	}
}

// TestApply_StablePartition_P6 checks that an UP shift stably partitions a
// column: relative order of uncovered cells preserved, relative order of
// covered cells preserved, column is their concatenation.
func TestApply_StablePartition_P6(t *testing.T) {
	b, _ := board.FromRows([]string{"0", "1", "2", "3"})
	// Die covers rows {1,3} of column 0 (a 1-wide, height-4 custom die).
	d, _ := die.NewDieFromRows(40, []string{"0", "1", "0", "1"})
	var log oplog.Log
	if _, err := Apply(b, d, board.Cell{X: 0, Y: 0}, board.Up, &log); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// uncovered = [0,2], covered = [1,3]; Up => uncovered++covered.
	want := []uint8{0, 2, 1, 3}
	for y, v := range want {
		if b.At(0, y) != v {
			t.Fatalf("column = %v; want %v", b.Column(0), want)
		}
	}
}

// TestApply_PermutationPreserved_P2 checks that Apply never changes the
// board's value multiset.
func TestApply_PermutationPreserved_P2(t *testing.T) {
	b, _ := board.FromRows([]string{"0123", "3210", "1032", "2301"})
	before := b.ValueCounts()
	d, _ := die.NewStandardDie(5, 2, die.EvenColumn)
	if _, err := Apply(b, d, board.Cell{X: 1, Y: 1}, board.Down, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	after := b.ValueCounts()
	for v, n := range before {
		if after[v] != n {
			t.Fatalf("ValueCounts changed for value %d: %d -> %d", v, n, after[v])
		}
	}
}

// TestApplyScratch_DoesNotLog checks ApplyScratch's no-log side effect.
func TestApplyScratch_DoesNotLog(t *testing.T) {
	b, _ := board.FromRows([]string{"01", "23"})
	d, _ := die.NewStandardDie(1, 1, die.Full)
	if err := ApplyScratch(b, d, board.Cell{X: 0, Y: 0}, board.Right); err != nil {
		t.Fatalf("ApplyScratch: %v", err)
	}
}

package align

import (
	"testing"

	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/die"
	"github.com/kuragecore/diecore/edgeswap"
	"github.com/kuragecore/diecore/oplog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := die.BuildStandardCatalog()
	if err != nil {
		t.Fatalf("BuildStandardCatalog: %v", err)
	}

	return NewEngine(edgeswap.NewEngine(cat))
}

func TestFindBeneficialAndAny(t *testing.T) {
	vals := []uint8{1, 0, 2, 0}
	tgt := []uint8{0, 1, 0, 2}
	if j := findBeneficial(vals, tgt, 0); j != 1 {
		t.Fatalf("findBeneficial = %d; want 1", j)
	}
	if j := findAny(vals, tgt, 2); j != 1 && j != 3 {
		t.Fatalf("findAny = %d; want 1 or 3", j)
	}
}

func TestArrangeable(t *testing.T) {
	if !arrangeable([]uint8{1, 0, 2}, []uint8{0, 1, 2}) {
		t.Fatalf("expected arrangeable line")
	}
	if arrangeable([]uint8{1, 2, 3}, []uint8{0, 0, 0}) {
		t.Fatalf("no cell has a counterpart; expected not arrangeable")
	}
}

// TestArrangeEdge_FixesTopRow checks that ArrangeEdge converges a
// mismatching top row to the goal.
func TestArrangeEdge_FixesTopRow(t *testing.T) {
	b, _ := board.FromRows([]string{"1023", "0000", "0000", "0000"})
	g, _ := board.FromRows([]string{"0123", "0000", "0000", "0000"})
	e := newTestEngine(t)
	var log oplog.Log

	if err := e.ArrangeEdge(b, g, &log, board.EdgeN); err != nil {
		t.Fatalf("ArrangeEdge: %v", err)
	}
	if got, want := b.Row(0), g.Row(0); !equalRows(got, want) {
		t.Fatalf("row0 = %v; want %v", got, want)
	}
}

// TestRoughArrange_ConvergesOrLeavesResidual checks that RoughArrange
// terminates and never alters the board's value multiset.
func TestRoughArrange_ConvergesOrLeavesResidual(t *testing.T) {
	b, _ := board.FromRows([]string{"220103", "213033", "022103", "322033"})
	g, _ := board.FromRows([]string{"000000", "111222", "222233", "333333"})
	before := b.ValueCounts()
	e := newTestEngine(t)
	var log oplog.Log

	if err := e.RoughArrange(b, g, &log); err != nil {
		t.Fatalf("RoughArrange: %v", err)
	}
	after := b.ValueCounts()
	for v, n := range before {
		if after[v] != n {
			t.Fatalf("ValueCounts changed for %d: %d -> %d", v, n, after[v])
		}
	}
}

func equalRows(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

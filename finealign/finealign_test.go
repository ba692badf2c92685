package finealign

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

// TestArrange_ReachesGoal checks convergence and the permutation
// invariant on a small board.
func TestArrange_ReachesGoal(t *testing.T) {
	b, _ := board.FromRows([]string{"10", "32"})
	g, _ := board.FromRows([]string{"01", "23"})
	e := newTestEngine(t)
	var log oplog.Log

	if err := e.Arrange(b, g, &log); err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if !b.Equal(g) {
		t.Fatalf("board after Arrange = %v; want goal %v", b.Cells, g.Cells)
	}
}

// TestArrange_S5_IdentityTransformEmitsNoOps checks scenario S5: an
// already-matching board produces an empty log.
func TestArrange_S5_IdentityTransformEmitsNoOps(t *testing.T) {
	b, _ := board.FromRows([]string{"0123"})
	g, _ := board.FromRows([]string{"0123"})
	e := newTestEngine(t)
	var log oplog.Log

	if err := e.Arrange(b, g, &log); err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if log.Len() != 0 {
		t.Fatalf("log.Len() = %d; want 0", log.Len())
	}
}

// TestFirstMismatch_RowMajorOrder checks deterministic selection order.
func TestFirstMismatch_RowMajorOrder(t *testing.T) {
	b, _ := board.FromRows([]string{"00", "10"})
	g, _ := board.FromRows([]string{"01", "10"})
	c, ok := firstMismatch(b, g)
	if !ok || c != (board.Cell{X: 1, Y: 0}) {
		t.Fatalf("firstMismatch = %v,%v; want (1,0),true", c, ok)
	}
}

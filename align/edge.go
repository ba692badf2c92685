package align

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/oplog"
)

// ArrangeEdge greedily fixes board's edge to match target's edge. For
// each mismatching position i, it prefers a mutually-beneficial swap
// (some j where board[j]==target[i] and board[i]==target[j]) and falls
// back to any j with board[j]==target[i]. At most one swap is attempted
// per position, matching the source's single-pass scan.
func (e *Engine) ArrangeEdge(b, target *board.Board, log *oplog.Log, edge board.Edge) error {
	n := len(b.EdgeValues(edge))
	tgt := target.EdgeValues(edge)

	for i := 0; i < n; i++ {
		vals := b.EdgeValues(edge)
		if vals[i] == tgt[i] {
			continue
		}
		j := findBeneficial(vals, tgt, i)
		if j < 0 {
			j = findAny(vals, tgt, i)
		}
		if j < 0 {
			continue
		}
		ci, cj := b.EdgeCell(edge, i), b.EdgeCell(edge, j)
		if err := e.Swapper.Swap(b, log, ci, cj); err != nil {
			return err
		}
	}

	return nil
}

// findBeneficial returns a position j != i where swapping fixes both
// i and j, or -1 if none exists.
func findBeneficial(vals, tgt []uint8, i int) int {
	for j := range vals {
		if j != i && vals[j] == tgt[i] && vals[i] == tgt[j] {
			return j
		}
	}

	return -1
}

// findAny returns any position j != i holding the value target[i]
// needs at i, or -1 if none exists.
func findAny(vals, tgt []uint8, i int) int {
	for j := range vals {
		if j != i && vals[j] == tgt[i] {
			return j
		}
	}

	return -1
}

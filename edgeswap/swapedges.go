package edgeswap

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/oplog"
)

// SwapEdges swaps two cells inside a single corner's block. t1 and t2
// must either share a column, share a row, or form an L-shape where one
// touches the top/bottom edge and the other touches a side edge of the
// block addressed by corner.
func (e *Engine) SwapEdges(b *board.Board, log *oplog.Log, corner board.Corner, t1, t2 board.Cell) error {
	switch {
	case t1.X == t2.X:
		if t1.Y == 0 || t1.Y == b.Height-1 {
			return e.swapAxisAlignedAt(b, log, t1, t2)
		}
		if t2.Y == 0 || t2.Y == b.Height-1 {
			return e.swapAxisAlignedAt(b, log, t2, t1)
		}

		return ErrNonSwappableTargets
	case t1.Y == t2.Y:
		if t1.X == 0 || t1.X == b.Width-1 {
			return e.swapAxisAlignedAt(b, log, t1, t2)
		}
		if t2.X == 0 || t2.X == b.Width-1 {
			return e.swapAxisAlignedAt(b, log, t2, t1)
		}

		return ErrNonSwappableTargets
	default:
		if err := e.SwapEdgeAxisAligned(b, log, corner, t1); err != nil {
			return err
		}
		if err := e.SwapEdgeAxisAligned(b, log, corner, t2); err != nil {
			return err
		}

		return e.SwapEdgeAxisAligned(b, log, corner, t1)
	}
}

// swapAxisAlignedAt resolves cornerCell's actual corner tag and swaps it
// with target via SwapEdgeAxisAligned.
func (e *Engine) swapAxisAlignedAt(b *board.Board, log *oplog.Log, cornerCell, target board.Cell) error {
	tag, ok := b.Corners.IsCorner(cornerCell)
	if !ok {
		return ErrNotACorner
	}

	return e.SwapEdgeAxisAligned(b, log, tag, target)
}

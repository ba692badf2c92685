package edgeswap

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/oplog"
)

// Swap exchanges the values at t1 and t2, leaving every other cell
// unchanged. It slides the corner of t1/t2's bounding box that is
// disjoint from both targets onto the matching board corner with two
// FULL_MAX shifts, performs the swap in that local frame via SwapEdges,
// then reverses the two shifts.
//
// t1 and t2 occupy two opposite corners of their own bounding box: the
// NW/SE pair when (dx, dy) share a sign, the NE/SW pair otherwise.
// Routing the roll through one of those occupied corners would leave
// one translated target sitting on the corner itself, which
// SwapEdgeAxisAligned rejects as non-swappable; routing through the
// other diagonal's corner keeps both translated targets off of it.
func (e *Engine) Swap(b *board.Board, log *oplog.Log, t1, t2 board.Cell) error {
	corner, anchor := routingCorner(t1, t2)

	rv, err := e.LineMoveToCornerVertical(b, log, corner, anchor)
	if err != nil {
		return err
	}
	cornerCell := b.Corners.Of(corner)
	rh, err := e.LineMoveToCornerHorizontal(b, log, corner, board.Cell{X: anchor.X, Y: cornerCell.Y})
	if err != nil {
		return err
	}

	nt1 := board.Cell{X: rolledX(t1.X, anchor.X, b.Width, corner), Y: rolledY(t1.Y, anchor.Y, b.Height, corner)}
	nt2 := board.Cell{X: rolledX(t2.X, anchor.X, b.Width, corner), Y: rolledY(t2.Y, anchor.Y, b.Height, corner)}
	if err := e.SwapEdges(b, log, corner, nt1, nt2); err != nil {
		return err
	}

	if _, err := e.LineMoveToCornerHorizontal(b, log, corner, rh); err != nil {
		return err
	}
	_, err = e.LineMoveToCornerVertical(b, log, corner, rv)

	return err
}

// routingCorner picks the bounding-box corner of t1/t2 to route Swap's
// rolls through and returns it with that corner's cell. When t1 and t2
// share a row or column there is no corner disjoint from both (the
// bounding box degenerates to a line), so it falls back to NW, which
// SwapEdges' axis-aligned branches handle without hitting a target.
func routingCorner(t1, t2 board.Cell) (board.Corner, board.Cell) {
	minX, maxX := t1.X, t2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := t1.Y, t2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	dx, dy := t2.X-t1.X, t2.Y-t1.Y
	switch {
	case dx == 0 || dy == 0:
		return board.NW, board.Cell{X: minX, Y: minY}
	case (dx > 0) == (dy > 0):
		// t1/t2 occupy NW/SE; route through NE instead.
		return board.NE, board.Cell{X: maxX, Y: minY}
	default:
		// t1/t2 occupy NE/SW; route through NW instead.
		return board.NW, board.Cell{X: minX, Y: minY}
	}
}

// rolledY returns oldY's position after a vertical roll anchored at ty
// moves row ty onto corner's row.
func rolledY(oldY, ty, h int, corner board.Corner) int {
	switch corner {
	case board.NW, board.NE:
		return ((oldY-ty)%h + h) % h
	default:
		return ((oldY-ty-1)%h + h) % h
	}
}

// rolledX returns oldX's position after a horizontal roll anchored at
// tx moves column tx onto corner's column.
func rolledX(oldX, tx, w int, corner board.Corner) int {
	switch corner {
	case board.NW, board.SW:
		return ((oldX-tx)%w + w) % w
	default:
		return ((oldX-tx-1)%w + w) % w
	}
}

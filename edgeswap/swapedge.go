package edgeswap

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/cut"
	"github.com/kuragecore/diecore/die"
	"github.com/kuragecore/diecore/oplog"
)

// fixedMethodThreshold is the operation count above which the staircase
// (Method A) costs more than the fixed four-operation sequence (Method
// B), per property P5's max(4, popcount(margin)+1) bound.
const fixedMethodThreshold = 4

// SwapEdgeAxisAligned swaps corner with target, where target lies on the
// same row or column as corner and target != corner. It dispatches to
// the power-of-two staircase when that costs at most four operations,
// and to the fixed four-operation sequence otherwise.
func (e *Engine) SwapEdgeAxisAligned(b *board.Board, log *oplog.Log, corner board.Corner, target board.Cell) error {
	cornerCell := b.Corners.Of(corner)
	switch {
	case target.Y == cornerCell.Y && target.X != cornerCell.X:
		return e.swapEdgeAxis(b, log, corner, target, board.Horizontal)
	case target.X == cornerCell.X && target.Y != cornerCell.Y:
		return e.swapEdgeAxis(b, log, corner, target, board.Vertical)
	default:
		return ErrNonSwappableTargets
	}
}

func (e *Engine) swapEdgeAxis(b *board.Board, log *oplog.Log, corner board.Corner, target board.Cell, axis board.Axis) error {
	margin, dir, err := marginAndDirection(b.Corners.Of(corner), corner, target, axis)
	if err != nil {
		return err
	}
	steps := decomposeToPowersOfTwo(margin)
	if len(steps)+1 > fixedMethodThreshold {
		return e.swapEdgeFixedTurn(b, log, corner, target, axis, dir)
	}

	for _, s := range steps {
		d, err := e.Catalog.Get(s, die.Full)
		if err != nil {
			return err
		}
		anchor := offsetAnchor(target, corner, axis, s)
		if _, err := cut.Apply(b, d, anchor, dir, log); err != nil {
			return err
		}
	}

	unit, err := e.Catalog.Get(1, die.Full)
	if err != nil {
		return err
	}
	_, err = cut.Apply(b, unit, target, dir, log)

	return err
}

// marginAndDirection computes the number of cells strictly between
// corner and target along axis, and the direction that pulls target's
// neighbor toward corner.
func marginAndDirection(cornerCell board.Cell, corner board.Corner, target board.Cell, axis board.Axis) (margin int, dir board.Direction, err error) {
	switch axis {
	case board.Horizontal:
		switch corner {
		case board.NW, board.SW:
			dir = board.Right
			margin = target.X - cornerCell.X - 1
		case board.NE, board.SE:
			dir = board.Left
			margin = cornerCell.X - target.X - 1
		default:
			return 0, 0, ErrNotACorner
		}
	case board.Vertical:
		switch corner {
		case board.NW, board.NE:
			dir = board.Down
			margin = target.Y - cornerCell.Y - 1
		case board.SW, board.SE:
			dir = board.Up
			margin = cornerCell.Y - target.Y - 1
		default:
			return 0, 0, ErrNotACorner
		}
	}
	if margin < 0 {
		return 0, 0, ErrNonSwappableTargets
	}

	return margin, dir, nil
}

// offsetAnchor places the size-s FULL die adjacent to target, on the
// side facing corner, per the offset table in 4.3.1.
func offsetAnchor(target board.Cell, corner board.Corner, axis board.Axis, s int) board.Cell {
	var ox, oy int
	switch axis {
	case board.Horizontal:
		switch corner {
		case board.NW:
			ox, oy = -s, -s+1
		case board.NE:
			ox, oy = 1, -s+1
		case board.SW:
			ox, oy = -s, 0
		case board.SE:
			ox, oy = 1, 0
		}
	case board.Vertical:
		switch corner {
		case board.NW:
			ox, oy = -s+1, -s
		case board.NE:
			ox, oy = 0, -s
		case board.SW:
			ox, oy = -s+1, 1
		case board.SE:
			ox, oy = 0, 1
		}
	}

	return board.Cell{X: target.X + ox, Y: target.Y + oy}
}

// swapEdgeFixedTurn performs the bounded four-operation edge swap: roll
// the line containing target so it lands on corner's edge, punch the
// now-adjacent unit swap, then roll back. Used only when the staircase
// would otherwise exceed fixedMethodThreshold operations.
func (e *Engine) swapEdgeFixedTurn(b *board.Board, log *oplog.Log, corner board.Corner, target board.Cell, axis board.Axis, dir board.Direction) error {
	var restore board.Cell
	var err error
	switch axis {
	case board.Horizontal:
		restore, err = e.LineMoveToCornerHorizontal(b, log, corner, target)
	case board.Vertical:
		restore, err = e.LineMoveToCornerVertical(b, log, corner, target)
	}
	if err != nil {
		return err
	}

	unit, err := e.Catalog.Get(1, die.Full)
	if err != nil {
		return err
	}
	if _, err := cut.Apply(b, unit, b.Corners.Of(corner), dir, log); err != nil {
		return err
	}

	switch axis {
	case board.Horizontal:
		_, err = e.LineMoveToCornerHorizontal(b, log, corner, restore)
	case board.Vertical:
		_, err = e.LineMoveToCornerVertical(b, log, corner, restore)
	}

	return err
}

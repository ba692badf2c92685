package edgeswap

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/cut"
	"github.com/kuragecore/diecore/oplog"
)

// LineMoveToCornerVertical rolls the board vertically with one FULL_MAX
// die so that the row containing target becomes corner's row (row 0 for
// NW/NE, row Height-1 for SW/SE). It returns the restore target: feeding
// it back into another call with the same corner undoes the roll.
func (e *Engine) LineMoveToCornerVertical(b *board.Board, log *oplog.Log, corner board.Corner, target board.Cell) (board.Cell, error) {
	cornerCell := b.Corners.Of(corner)
	if target.Y == cornerCell.Y {
		return target, nil
	}

	fullMax := e.Catalog.FullMax()
	h := b.Height
	switch corner {
	case board.NW, board.NE:
		anchor := board.Cell{X: 0, Y: target.Y - fullMax.Height}
		if _, err := cut.Apply(b, fullMax, anchor, board.Up, log); err != nil {
			return board.Cell{}, err
		}

		return board.Cell{X: target.X, Y: (h - target.Y) % h}, nil
	case board.SW, board.SE:
		anchor := board.Cell{X: 0, Y: target.Y + 1}
		if _, err := cut.Apply(b, fullMax, anchor, board.Down, log); err != nil {
			return board.Cell{}, err
		}
		restoreY := ((h-target.Y-2)%h + h) % h

		return board.Cell{X: target.X, Y: restoreY}, nil
	default:
		return board.Cell{}, ErrNotACorner
	}
}

// LineMoveToCornerHorizontal is the column analogue of
// LineMoveToCornerVertical: it rolls the board horizontally so the
// column containing target becomes corner's column (column 0 for
// NW/SW, column Width-1 for NE/SE).
func (e *Engine) LineMoveToCornerHorizontal(b *board.Board, log *oplog.Log, corner board.Corner, target board.Cell) (board.Cell, error) {
	cornerCell := b.Corners.Of(corner)
	if target.X == cornerCell.X {
		return target, nil
	}

	fullMax := e.Catalog.FullMax()
	w := b.Width
	switch corner {
	case board.NW, board.SW:
		anchor := board.Cell{X: target.X - fullMax.Width, Y: 0}
		if _, err := cut.Apply(b, fullMax, anchor, board.Left, log); err != nil {
			return board.Cell{}, err
		}

		return board.Cell{X: (w - target.X) % w, Y: target.Y}, nil
	case board.NE, board.SE:
		anchor := board.Cell{X: target.X + 1, Y: 0}
		if _, err := cut.Apply(b, fullMax, anchor, board.Right, log); err != nil {
			return board.Cell{}, err
		}
		restoreX := ((w-target.X-2)%w + w) % w

		return board.Cell{X: restoreX, Y: target.Y}, nil
	default:
		return board.Cell{}, ErrNotACorner
	}
}

package align

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/oplog"
)

// ArrangeRows arranges the top and bottom edges, then rolls each
// arrangeable interior row to the top edge (dragging target's matching
// row along unlogged) and arranges it there, finally restoring the
// original row ordering. It reports whether any interior row was
// arranged.
func (e *Engine) ArrangeRows(b, target *board.Board, log *oplog.Log) (bool, error) {
	if err := e.ArrangeEdge(b, target, log, board.EdgeN); err != nil {
		return false, err
	}
	if err := e.ArrangeEdge(b, target, log, board.EdgeS); err != nil {
		return false, err
	}

	type rollback struct{ boardRestore, targetRestore board.Cell }
	var history []rollback
	changed := false

	for i := 1; i < b.Height-1; i++ {
		if !arrangeable(b.Row(i), target.Row(i)) {
			continue
		}
		changed = true

		br, err := e.Swapper.LineMoveToCornerVertical(b, log, board.NW, board.Cell{Y: i})
		if err != nil {
			return changed, err
		}
		tr, err := e.Swapper.LineMoveToCornerVertical(target, nil, board.NW, board.Cell{Y: i})
		if err != nil {
			return changed, err
		}
		history = append(history, rollback{br, tr})

		if err := e.ArrangeEdge(b, target, log, board.EdgeN); err != nil {
			return changed, err
		}
	}

	for k := len(history) - 1; k >= 0; k-- {
		h := history[k]
		if _, err := e.Swapper.LineMoveToCornerVertical(b, log, board.NW, h.boardRestore); err != nil {
			return changed, err
		}
		if _, err := e.Swapper.LineMoveToCornerVertical(target, nil, board.NW, h.targetRestore); err != nil {
			return changed, err
		}
	}

	return changed, nil
}

package align

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/oplog"
)

// ArrangeColumns is the column analogue of ArrangeRows: it arranges the
// left and right edges, then rolls each arrangeable interior column to
// the left edge and arranges it there, finally restoring the original
// column ordering. It reports whether any interior column was arranged.
func (e *Engine) ArrangeColumns(b, target *board.Board, log *oplog.Log) (bool, error) {
	if err := e.ArrangeEdge(b, target, log, board.EdgeW); err != nil {
		return false, err
	}
	if err := e.ArrangeEdge(b, target, log, board.EdgeE); err != nil {
		return false, err
	}

	type rollback struct{ boardRestore, targetRestore board.Cell }
	var history []rollback
	changed := false

	for i := 1; i < b.Width-1; i++ {
		if !arrangeable(b.Column(i), target.Column(i)) {
			continue
		}
		changed = true

		br, err := e.Swapper.LineMoveToCornerHorizontal(b, log, board.NW, board.Cell{X: i})
		if err != nil {
			return changed, err
		}
		tr, err := e.Swapper.LineMoveToCornerHorizontal(target, nil, board.NW, board.Cell{X: i})
		if err != nil {
			return changed, err
		}
		history = append(history, rollback{br, tr})

		if err := e.ArrangeEdge(b, target, log, board.EdgeW); err != nil {
			return changed, err
		}
	}

	for k := len(history) - 1; k >= 0; k-- {
		h := history[k]
		if _, err := e.Swapper.LineMoveToCornerHorizontal(b, log, board.NW, h.boardRestore); err != nil {
			return changed, err
		}
		if _, err := e.Swapper.LineMoveToCornerHorizontal(target, nil, board.NW, h.targetRestore); err != nil {
			return changed, err
		}
	}

	return changed, nil
}

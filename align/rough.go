package align

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/oplog"
)

// RoughArrange alternates ArrangeRows and ArrangeColumns until a full
// round finds no arrangeable row or column.
//
// ArrangeRows/ArrangeColumns roll target's rows and columns in place
// while searching for arrangeable lines, restoring the original
// ordering after the pass over the interior lines. That restoration only runs on the
// success path, so RoughArrange works against a clone of target and
// discards it: if a call returns early on error, the caller's target
// board is left exactly as it was passed in.
func (e *Engine) RoughArrange(b, target *board.Board, log *oplog.Log) error {
	scratch := target.Clone()
	for {
		rowsChanged, err := e.ArrangeRows(b, scratch, log)
		if err != nil {
			return err
		}
		colsChanged, err := e.ArrangeColumns(b, scratch, log)
		if err != nil {
			return err
		}
		if !rowsChanged && !colsChanged {
			return nil
		}
	}
}

package cut

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/die"
	"github.com/kuragecore/diecore/oplog"
)

// Apply anchors d at anchor on b, shifts the covered cells along dir, and
// appends the resulting oplog.CuttingInfo to log when log is non-nil. It
// returns ErrOutOfBounds if no stencil cell lands on the board, and
// ErrUnsupportedDirection if dir is not one of the four defined
// directions.
//
// Complexity: O(k*n), where k is the number of board lines (columns for
// Up/Down, rows for Left/Right) the clipped die spans and n is the length
// of each line; O(W*H) when the die spans the whole board.
func Apply(b *board.Board, d *die.CuttingDie, anchor board.Cell, dir board.Direction, log *oplog.Log) (oplog.CuttingInfo, error) {
	info, err := apply(b, d, anchor, dir)
	if err != nil {
		return oplog.CuttingInfo{}, err
	}
	if log != nil {
		log.Append(info)
	}

	return info, nil
}

// ApplyScratch performs the identical mutation as Apply but never logs,
// for boards that are not the session's work board (for example,
// replaying a finished log onto a fresh start board). The coarse aligner
// moves its derived target copies through Apply with a nil log instead.
func ApplyScratch(b *board.Board, d *die.CuttingDie, anchor board.Cell, dir board.Direction) error {
	_, err := apply(b, d, anchor, dir)

	return err
}

// clip computes the on-board rectangle covered by d anchored at anchor,
// clipped to b's bounds. ok is false if the rectangle is empty.
func clip(b *board.Board, d *die.CuttingDie, anchor board.Cell) (x0, x1, y0, y1 int, ok bool) {
	x0 = max(0, anchor.X)
	x1 = min(b.Width, anchor.X+d.Width)
	y0 = max(0, anchor.Y)
	y1 = min(b.Height, anchor.Y+d.Height)

	return x0, x1, y0, y1, x0 < x1 && y0 < y1
}

// maskAt reports whether the die's stencil is true at board coordinate
// (x,y) once anchored at anchor and clipped to b.
func maskAt(d *die.CuttingDie, anchor board.Cell, x, y int) bool {
	sx, sy := x-anchor.X, y-anchor.Y
	if sx < 0 || sx >= d.Width || sy < 0 || sy >= d.Height {
		return false
	}

	return d.At(sx, sy)
}

func apply(b *board.Board, d *die.CuttingDie, anchor board.Cell, dir board.Direction) (oplog.CuttingInfo, error) {
	if !dir.IsValid() {
		return oplog.CuttingInfo{}, ErrUnsupportedDirection
	}
	x0, x1, y0, y1, ok := clip(b, d, anchor)
	if !ok {
		return oplog.CuttingInfo{}, ErrOutOfBounds
	}

	covered := false
	switch dir.Axis() {
	case board.Vertical:
		for x := x0; x < x1; x++ {
			if partitionColumn(b, d, anchor, x, y0, y1, dir) {
				covered = true
			}
		}
	case board.Horizontal:
		for y := y0; y < y1; y++ {
			if partitionRow(b, d, anchor, y, x0, x1, dir) {
				covered = true
			}
		}
	}
	if !covered {
		return oplog.CuttingInfo{}, ErrOutOfBounds
	}

	return oplog.CuttingInfo{P: d.ID, X: anchor.X, Y: anchor.Y, S: dir}, nil
}

// partitionColumn stably partitions column x by the mask and writes the
// result back (Up: uncovered++covered; Down: covered++uncovered). Only
// rows in [y0,y1) can be masked true, but the full column is reordered so
// cells shift all the way to the opposite edge. It reports whether any
// cell in this column was covered.
func partitionColumn(b *board.Board, d *die.CuttingDie, anchor board.Cell, x, y0, y1 int, dir board.Direction) bool {
	var uncovered, covered []uint8
	any := false
	for y := 0; y < b.Height; y++ {
		m := y >= y0 && y < y1 && maskAt(d, anchor, x, y)
		v := b.At(x, y)
		if m {
			covered = append(covered, v)
			any = true
		} else {
			uncovered = append(uncovered, v)
		}
	}
	if !any {
		return false
	}

	var merged []uint8
	if dir == board.Up {
		merged = append(uncovered, covered...)
	} else {
		merged = append(covered, uncovered...)
	}
	for y, v := range merged {
		b.Set(x, y, v)
	}

	return true
}

// partitionRow stably partitions row y by the mask and writes the result
// back (Left: uncovered++covered; Right: covered++uncovered). It reports
// whether any cell in this row was covered.
func partitionRow(b *board.Board, d *die.CuttingDie, anchor board.Cell, y, x0, x1 int, dir board.Direction) bool {
	var uncovered, covered []uint8
	any := false
	for x := 0; x < b.Width; x++ {
		m := x >= x0 && x < x1 && maskAt(d, anchor, x, y)
		v := b.At(x, y)
		if m {
			covered = append(covered, v)
			any = true
		} else {
			uncovered = append(uncovered, v)
		}
	}
	if !any {
		return false
	}

	var merged []uint8
	if dir == board.Left {
		merged = append(uncovered, covered...)
	} else {
		merged = append(covered, uncovered...)
	}
	for x, v := range merged {
		b.Set(x, y, v)
	}

	return true
}

package finealign

import (
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/edgeswap"
	"github.com/kuragecore/diecore/oplog"
)

// Engine closes the residual gap between a work board and its goal
// using the edge-swap engine's generic Swap primitive.
type Engine struct {
	Swapper *edgeswap.Engine
}

// NewEngine wraps an edge-swap engine for use by the fine aligner.
func NewEngine(swapper *edgeswap.Engine) *Engine {
	return &Engine{Swapper: swapper}
}

// Arrange swaps cells one pair at a time, in deterministic row-major
// order, until b equals goal.
func (e *Engine) Arrange(b, goal *board.Board, log *oplog.Log) error {
	for {
		a, ok := firstMismatch(b, goal)
		if !ok {
			return nil
		}
		partner := findMutuallyUseful(b, goal, a)
		if err := e.Swapper.Swap(b, log, a, partner); err != nil {
			return err
		}
	}
}

// firstMismatch returns the first cell, in row-major order, where b and
// goal disagree.
func firstMismatch(b, goal *board.Board) (board.Cell, bool) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) != goal.At(x, y) {
				return board.Cell{X: x, Y: y}, true
			}
		}
	}

	return board.Cell{}, false
}

// findMutuallyUseful searches, in row-major order, for a mismatching
// cell b such that b.At(partner) == goal.At(a) and b.At(a) ==
// goal.At(partner); it falls back to any mismatching cell holding the
// value a needs.
func findMutuallyUseful(b, goal *board.Board, a board.Cell) board.Cell {
	needed := goal.At(a.X, a.Y)
	aVal := b.At(a.X, a.Y)

	var fallback board.Cell
	haveFallback := false
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := board.Cell{X: x, Y: y}
			if c == a || b.At(x, y) == goal.At(x, y) {
				continue
			}
			if b.At(x, y) != needed {
				continue
			}
			if !haveFallback {
				fallback = c
				haveFallback = true
			}
			if goal.At(x, y) == aVal {
				return c
			}
		}
	}

	return fallback
}

// Package edgeswap implements the edge-swap family: swapping two cells on
// a shared row/column near a board corner, and swapping any two cells by
// sliding their bounding block to a corner first.
//
// What:
//
//   - SwapEdgeAxisAligned swaps a corner with a cell on the same row or
//     column, via a power-of-two staircase of FULL dies (Method A) or a
//     fixed four-operation sequence (Method B) when the staircase would
//     exceed four operations.
//   - LineMoveToCornerVertical/Horizontal roll a row or column to the
//     board's edge with a single FULL_MAX die, returning the pair that
//     undoes the roll.
//   - SwapEdges swaps two cells inside a single corner's block.
//   - Swap swaps any two cells on the board.
//
// Why:
//
//   - Every cell-level rearrangement the aligners need reduces to one of
//     these primitives; keeping the corner-arithmetic in one package is
//     what lets align and finealign stay free of direction/offset tables.
//
// Complexity:
//
//   - SwapEdgeAxisAligned: O(popcount(margin)) die applications, each
//     O(board dimension).
//   - Swap: O(1) full-board shifts plus one SwapEdges call.
//
// Errors:
//
//   - ErrNotACorner: a corner-parameterized call received a non-corner tag.
//   - ErrNonSwappableTargets: SwapEdges received a pair sharing neither row
//     nor column and not forming a valid L-shape inside a corner block.
package edgeswap

// Package board defines the grid of cells the solver rewrites, the four
// cardinal directions a die can shift cells along, and the tagged-corner
// type used throughout the edge-swap and alignment packages.
//
// What:
//
//   - Board wraps a rectangular [][]uint8 grid of small cell values
//     (alphabet size <= 4) and is deep-copied on construction.
//   - Corner is a tagged variant {NW, NE, SW, SE}; CornerCells precomputes
//     the four corner coordinates and exposes edge predicates/accessors.
//   - Direction enumerates {UP, DOWN, LEFT, RIGHT} with the wire codes
//     0..3 used by the answer JSON contract.
//
// Why:
//
//   - Every other package (die, cut, edgeswap, align, finealign) operates
//     on *Board and never reaches into a raw [][]uint8 directly, so the
//     bounds/shape invariants live in exactly one place.
//
// Complexity:
//
//   - NewBoard / FromRows: O(W*H) time and memory.
//   - InBounds, Clone: O(1) / O(W*H).
//
// Errors:
//
//   - ErrEmptyBoard: input grid has no rows or no columns.
//   - ErrRaggedRows: rows have differing lengths.
//   - ErrCellOutOfRange: a cell value exceeds the board's alphabet.
//   - ErrDimensionMismatch: two boards expected to share shape do not.
package board

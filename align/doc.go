// Package align implements the coarse aligner: greedy edge, row, and
// column arrangement that brings a work board close to its goal before
// the fine aligner takes over.
//
// What:
//
//   - ArrangeEdge fixes one edge of the board to match the goal's edge,
//     preferring mutually-beneficial swaps before any matching swap.
//   - ArrangeRows/ArrangeColumns arrange the top/bottom (or left/right)
//     edges, then roll each arrangeable interior row/column to the edge
//     and arrange it too, finally restoring the original ordering.
//   - RoughArrange alternates ArrangeRows and ArrangeColumns until
//     neither finds an arrangeable line.
//
// Why:
//
//   - Edge-level and whole-line batching resolves most of the board
//     cheaply; only the residual mismatches are left for the fine
//     aligner's per-cell swap loop.
//
// Complexity:
//
//   - ArrangeEdge: O(edge length^2) comparisons plus one Swap per
//     mismatch.
//   - RoughArrange: O((W+H) * edge arrangement cost) per pass, bounded
//     by the number of passes until no line is arrangeable.
package align

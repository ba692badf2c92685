// Package cut implements the die application primitive: anchoring a
// cutting die at an integer offset, clipping it against the board, and
// stably partitioning each affected row or column by the resulting mask.
//
// What:
//
//   - Apply mutates a board and appends the resulting CuttingInfo to the
//     given oplog.Log; passed a nil log (as the coarse aligner does for
//     its derived target copies), it logs nothing.
//   - ApplyScratch performs the identical mutation on a board that is not
//     the work board (such as a log replay) and never logs.
//
// Why:
//
//   - Every higher-level primitive (edgeswap, align, finealign) is built
//     purely from repeated calls to Apply; keeping the mask/partition
//     logic in one place is what makes property P6 (stable partition)
//     and I2 (non-empty intersection) provable once and relied on
//     everywhere else.
//
// Complexity:
//
//   - Apply: O(die.Width * die.Height) to build the clipped mask, plus
//     O(board.Width) or O(board.Height) per affected line for the
//     partition -- O(W*H) worst case when the die covers the board.
//
// Errors:
//
//   - ErrOutOfBounds: the anchor places no stencil cell on the board.
//   - ErrUnsupportedDirection: direction is not one of the four defined
//     board.Direction values.
package cut

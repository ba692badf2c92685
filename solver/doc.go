// Package solver drives the full pipeline: parse a problem, build the
// standard die catalog plus any user-supplied patterns, coarse-arrange,
// fine-arrange, and serialize the resulting operation log.
//
// What:
//
//   - Problem (here) and oplog.Answer (returned by Solve) mirror the
//     wire JSON contract exactly (§6).
//   - Session owns the work board, goal board, die catalog, and log for
//     one solve.
//   - Solve runs the full driver and returns the serialized log.
//
// Why:
//
//   - Keeping board/die/cut/edgeswap/align/finealign free of any notion
//     of "a solve" lets this package be the only place that wires them
//     together end to end, which is what makes the driver testable
//     against the concrete scenarios independently of its callers (CLI,
//     HTTP, debug board).
//
// Complexity:
//
//   - Dominated by RoughArrange and Arrange; see those packages.
package solver

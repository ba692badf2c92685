// Package diecore is the module root of a die-cutting board
// rearrangement solver. It holds no code of its own; the working
// packages live under its subdirectories:
//
//	board/        — the W x H cell grid and its value alphabet
//	die/          — cutting die stencils and the standard catalog
//	cut/          — the mask-and-partition application primitive
//	edgeswap/     — corner-anchored edge swaps (axis-aligned and L-shaped)
//	align/        — coarse row/column arrangement toward a goal board
//	finealign/    — per-cell swap loop that finishes the arrangement
//	oplog/        — the operation log and its JSON answer format
//	solver/       — wires the above into Solve(Problem) (oplog.Answer, error)
//	transport/    — HTTP client for fetching problems and posting answers
//	persist/      — local JSON dump/restore of problems and logs
//	debugboard/   — random start/goal board generation for offline runs
//	cmd/proconsolver/ — the CLI entry point
//
//	go get github.com/kuragecore/diecore
package diecore

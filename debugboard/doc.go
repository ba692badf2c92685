// Package debugboard generates a random start/goal board pair for
// offline testing, mirroring the CLI's "forced random board" switch.
// The goal board is always a permutation of the start board's cells, so
// the generated pair is solvable by construction.
package debugboard

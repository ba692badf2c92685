package edgeswap

import "errors"

// Sentinel errors for the edge-swap family.
var (
	// ErrNotACorner indicates a corner-parameterized primitive received a
	// cell that is not one of the board's four corners.
	ErrNotACorner = errors.New("edgeswap: not a corner cell")
	// ErrNonSwappableTargets indicates SwapEdges received a pair that
	// shares neither a row nor a column and does not form a valid
	// L-shape inside a corner block.
	ErrNonSwappableTargets = errors.New("edgeswap: targets share no row or column and form no valid corner L-shape")
)

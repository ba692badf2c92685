package align

import "github.com/kuragecore/diecore/edgeswap"

// Engine arranges a work board toward a goal board using the edge-swap
// primitives of the wrapped edgeswap.Engine.
type Engine struct {
	Swapper *edgeswap.Engine
}

// NewEngine wraps an edge-swap engine for use by the coarse aligner.
func NewEngine(swapper *edgeswap.Engine) *Engine {
	return &Engine{Swapper: swapper}
}

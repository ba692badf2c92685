package edgeswap

import "github.com/kuragecore/diecore/die"

// Engine holds the die catalog shared by every edge-swap primitive. It
// carries no board or log state of its own -- both are threaded through
// each call -- so one Engine can drive any number of sessions.
type Engine struct {
	Catalog *die.StandardCatalog
}

// NewEngine wraps a standard catalog for use by the edge-swap primitives.
func NewEngine(catalog *die.StandardCatalog) *Engine {
	return &Engine{Catalog: catalog}
}

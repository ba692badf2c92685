package solver

import (
	"github.com/kuragecore/diecore/align"
	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/die"
	"github.com/kuragecore/diecore/edgeswap"
	"github.com/kuragecore/diecore/finealign"
	"github.com/kuragecore/diecore/oplog"
)

// Session owns every piece of mutable state for one solve: the work
// board, the goal board, the die catalog, and the operation log. It is
// not safe for concurrent use; the core is single-threaded per §5.
type Session struct {
	Work    *board.Board
	Goal    *board.Board
	Catalog *die.StandardCatalog
	Log     oplog.Log

	align     *align.Engine
	fineAlign *finealign.Engine
}

// NewSession parses a problem into a work board, goal board, and a
// standard catalog with the problem's user patterns appended.
func NewSession(p Problem) (*Session, error) {
	work, err := board.FromRows(p.Board.Start)
	if err != nil {
		return nil, err
	}
	goal, err := board.FromRows(p.Board.Goal)
	if err != nil {
		return nil, err
	}
	if !work.SameShape(goal) {
		return nil, board.ErrDimensionMismatch
	}
	catalog, err := die.BuildStandardCatalog()
	if err != nil {
		return nil, err
	}
	for _, pat := range p.General.Patterns {
		d, err := die.NewDieFromRows(pat.P, pat.Cells)
		if err != nil {
			return nil, err
		}
		catalog.AddGeneral(d)
	}

	swapper := edgeswap.NewEngine(catalog)

	return &Session{
		Work:      work,
		Goal:      goal,
		Catalog:   catalog,
		align:     align.NewEngine(swapper),
		fineAlign: finealign.NewEngine(swapper),
	}, nil
}

// Solve runs the full driver: rough arrangement, then fine arrangement,
// and returns the resulting operation log.
func (s *Session) Solve() (*oplog.Log, error) {
	if err := s.align.RoughArrange(s.Work, s.Goal, &s.Log); err != nil {
		return nil, err
	}
	if err := s.fineAlign.Arrange(s.Work, s.Goal, &s.Log); err != nil {
		return nil, err
	}

	return &s.Log, nil
}

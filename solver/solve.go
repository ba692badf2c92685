package solver

import "github.com/kuragecore/diecore/oplog"

// Solve parses p, builds the catalog, runs the coarse and fine
// aligners, and returns the serialized answer.
func Solve(p Problem) (oplog.Answer, error) {
	sess, err := NewSession(p)
	if err != nil {
		return oplog.Answer{}, err
	}
	log, err := sess.Solve()
	if err != nil {
		return oplog.Answer{}, err
	}

	return log.ToAnswer(), nil
}

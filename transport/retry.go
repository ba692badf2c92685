package transport

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/kuragecore/diecore/oplog"
	"github.com/kuragecore/diecore/solver"
)

// FetchProblemRetrying calls fetcher.FetchProblem up to attempts times,
// waiting interval between failures. It is the CLI's "retry
// count/interval against an HTTP endpoint" switch made concrete.
func FetchProblemRetrying(ctx context.Context, fetcher ProblemFetcher, attempts int, interval time.Duration) (solver.Problem, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		p, err := fetcher.FetchProblem(ctx)
		if err == nil {
			return p, nil
		}
		lastErr = err
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return solver.Problem{}, ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return solver.Problem{}, errors.Wrapf(lastErr, "transport: fetch problem failed after %d attempts", attempts)
}

// PostAnswerRetrying is the PostAnswer analogue of FetchProblemRetrying.
func PostAnswerRetrying(ctx context.Context, poster AnswerPoster, answer oplog.Answer, attempts int, interval time.Duration) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		err := poster.PostAnswer(ctx, answer)
		if err == nil {
			return nil
		}
		lastErr = err
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return errors.Wrapf(lastErr, "transport: post answer failed after %d attempts", attempts)
}

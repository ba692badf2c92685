package transport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kuragecore/diecore/oplog"
	"github.com/kuragecore/diecore/solver"
)

type flakyFetcher struct {
	failures int
	calls    int
}

func (f *flakyFetcher) FetchProblem(ctx context.Context) (solver.Problem, error) {
	f.calls++
	if f.calls <= f.failures {
		return solver.Problem{}, errors.New("boom")
	}

	return solver.Problem{Board: solver.ProblemBoard{Width: 1, Height: 1, Start: []string{"0"}, Goal: []string{"0"}}}, nil
}

func TestFetchProblemRetrying_SucceedsAfterFailures(t *testing.T) {
	f := &flakyFetcher{failures: 2}
	p, err := FetchProblemRetrying(context.Background(), f, 3, time.Millisecond)
	if err != nil {
		t.Fatalf("FetchProblemRetrying: %v", err)
	}
	if p.Board.Width != 1 {
		t.Fatalf("unexpected problem: %+v", p)
	}
	if f.calls != 3 {
		t.Fatalf("calls = %d; want 3", f.calls)
	}
}

func TestFetchProblemRetrying_ExhaustsAttempts(t *testing.T) {
	f := &flakyFetcher{failures: 5}
	_, err := FetchProblemRetrying(context.Background(), f, 2, time.Millisecond)
	if err == nil {
		t.Fatalf("expected error after exhausting attempts")
	}
}

type alwaysPoster struct{ err error }

func (a alwaysPoster) PostAnswer(ctx context.Context, answer oplog.Answer) error { return a.err }

func TestPostAnswerRetrying_ImmediateSuccess(t *testing.T) {
	if err := PostAnswerRetrying(context.Background(), alwaysPoster{}, oplog.Answer{}, 3, time.Millisecond); err != nil {
		t.Fatalf("PostAnswerRetrying: %v", err)
	}
}

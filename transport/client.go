package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kuragecore/diecore/oplog"
	"github.com/kuragecore/diecore/solver"
)

// ProblemFetcher retrieves a problem from an external scoring server.
type ProblemFetcher interface {
	FetchProblem(ctx context.Context) (solver.Problem, error)
}

// AnswerPoster submits a serialized answer to an external scoring server.
type AnswerPoster interface {
	PostAnswer(ctx context.Context, answer oplog.Answer) error
}

// Client is the net/http-backed collaborator. Token authenticates
// against URL; both come from the environment per the external
// interface contract, out of the solver core's scope.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
}

// NewClient builds a collaborator against baseURL, authenticating with
// token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
		Token:      token,
	}
}

// FetchProblem retrieves and decodes the problem JSON. Each request
// carries a fresh correlation ID in the X-Request-Id header so retried
// requests can be traced in server-side logs.
func (c *Client) FetchProblem(ctx context.Context) (solver.Problem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/problem", nil)
	if err != nil {
		return solver.Problem{}, errors.Wrap(err, "transport: build fetch request")
	}
	c.authorize(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return solver.Problem{}, errors.Wrap(err, "transport: fetch problem")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return solver.Problem{}, errors.Errorf("transport: fetch problem: unexpected status %d", resp.StatusCode)
	}

	var p solver.Problem
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return solver.Problem{}, errors.Wrap(err, "transport: decode problem")
	}

	return p, nil
}

// PostAnswer submits the serialized answer.
func (c *Client) PostAnswer(ctx context.Context, answer oplog.Answer) error {
	body, err := json.Marshal(answer)
	if err != nil {
		return errors.Wrap(err, "transport: encode answer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/answer", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "transport: build post request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "transport: post answer")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("transport: post answer: unexpected status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("X-Request-Id", uuid.NewString())
}

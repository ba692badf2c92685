// Package transport is the HTTP collaborator: it fetches a problem from
// the scoring server and posts back the serialized answer. It is
// external to the solver core -- the core only ever sees the parsed
// solver.Problem and the already-serialized oplog.Answer.
//
// Errors crossing this boundary are wrapped with github.com/pkg/errors
// so a failed fetch/post carries a stack trace in its log line, and
// each request is tagged with a github.com/google/uuid correlation ID
// for matching a retry's log lines across the retry count/interval the
// CLI configures.
package transport

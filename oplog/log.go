package oplog

import (
	"encoding/json"

	"github.com/kuragecore/diecore/board"
)

// CuttingInfo is one applied operation: die ID, anchor (x,y), direction.
// Direction is encoded on the wire as its Direction value (0..3, matching
// board.Up/Down/Left/Right).
type CuttingInfo struct {
	P int            // die ID
	X int            // anchor X (may be negative)
	Y int            // anchor Y (may be negative)
	S board.Direction // direction code
}

// opJSON is the wire shape of a single operation.
type opJSON struct {
	P int `json:"p"`
	X int `json:"x"`
	Y int `json:"y"`
	S int `json:"s"`
}

// Log is an append-only, ordered sequence of CuttingInfo records. The zero
// value is an empty, usable log.
type Log struct {
	ops []CuttingInfo
}

// Append records op at the end of the log.
func (l *Log) Append(op CuttingInfo) {
	l.ops = append(l.ops, op)
}

// Len returns the number of recorded operations.
func (l *Log) Len() int {
	return len(l.ops)
}

// Ops returns a copy of the recorded operations, in application order.
func (l *Log) Ops() []CuttingInfo {
	out := make([]CuttingInfo, len(l.ops))
	copy(out, l.ops)

	return out
}

// Answer is the serialized answer-JSON contract: {"n": count, "ops": [...]}.
type Answer struct {
	N   int      `json:"n"`
	Ops []opJSON `json:"ops"`
}

// ToAnswer converts the log to its wire DTO.
func (l *Log) ToAnswer() Answer {
	ops := make([]opJSON, len(l.ops))
	for i, op := range l.ops {
		ops[i] = opJSON{P: op.P, X: op.X, Y: op.Y, S: int(op.S)}
	}

	return Answer{N: len(l.ops), Ops: ops}
}

// MarshalJSON renders the log directly in the answer-JSON contract, so a
// *Log can be passed straight to json.Marshal.
func (l *Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToAnswer())
}

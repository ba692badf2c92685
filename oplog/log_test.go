package oplog

import (
	"encoding/json"
	"testing"

	"github.com/kuragecore/diecore/board"
)

// TestLog_AppendAndLen checks basic append-only bookkeeping.
func TestLog_AppendAndLen(t *testing.T) {
	var l Log
	if l.Len() != 0 {
		t.Fatalf("zero-value Log.Len() = %d; want 0", l.Len())
	}
	l.Append(CuttingInfo{P: 1, X: 0, Y: 0, S: board.Right})
	l.Append(CuttingInfo{P: 2, X: -1, Y: 3, S: board.Up})
	if l.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", l.Len())
	}
	ops := l.Ops()
	if ops[0].P != 1 || ops[1].P != 2 {
		t.Fatalf("Ops() out of order: %+v", ops)
	}
}

// TestLog_MarshalJSON_Contract checks the answer wire format exactly,
// including direction codes 0=UP,1=DOWN,2=LEFT,3=RIGHT.
func TestLog_MarshalJSON_Contract(t *testing.T) {
	var l Log
	l.Append(CuttingInfo{P: 1, X: 0, Y: 0, S: board.Right})

	raw, err := json.Marshal(&l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"n":1,"ops":[{"p":1,"x":0,"y":0,"s":3}]}`
	if string(raw) != want {
		t.Fatalf("Marshal() = %s; want %s", raw, want)
	}
}

// TestLog_EmptyMarshalsToZeroOps checks S5 (identity transform => empty log).
func TestLog_EmptyMarshalsToZeroOps(t *testing.T) {
	var l Log
	raw, _ := json.Marshal(&l)
	want := `{"n":0,"ops":[]}`
	if string(raw) != want {
		t.Fatalf("Marshal() = %s; want %s", raw, want)
	}
}

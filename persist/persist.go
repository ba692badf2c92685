package persist

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/kuragecore/diecore/oplog"
	"github.com/kuragecore/diecore/solver"
)

// DumpProblem writes p as indented JSON to path, creating or
// truncating the file.
func DumpProblem(path string, p solver.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "persist: create dump file %q", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return errors.Wrapf(err, "persist: encode dump file %q", path)
	}

	return nil
}

// LoadProblem reads a previously dumped problem from path.
func LoadProblem(path string) (solver.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return solver.Problem{}, errors.Wrapf(err, "persist: read dump file %q", path)
	}

	var p solver.Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return solver.Problem{}, errors.Wrapf(err, "persist: decode dump file %q", path)
	}

	return p, nil
}

// WriteLog writes the answer's serialized form to path.
func WriteLog(path string, answer oplog.Answer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "persist: create log file %q", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(answer); err != nil {
		return errors.Wrapf(err, "persist: encode log file %q", path)
	}

	return nil
}

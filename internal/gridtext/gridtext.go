// Package gridtext provides the single row-parsing routine shared by
// board.FromRows and die.NewDieFromRows. It validates shape only;
// callers interpret the bytes in their own alphabet.
package gridtext

import "errors"

// Sentinel errors for row parsing.
var (
	// ErrEmpty indicates the input has no rows or no columns.
	ErrEmpty = errors.New("gridtext: input must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("gridtext: all rows must have the same length")
)

// Parse validates that rows is non-empty and rectangular, then returns the
// raw bytes of each row as a [][]byte grid. It performs no alphabet checks;
// callers (board, die) translate bytes to their own value types and report
// their own out-of-range errors.
func Parse(rows []string) ([][]byte, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	grid := make([][]byte, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, ErrRagged
		}
		grid[y] = []byte(row)
	}

	return grid, nil
}

package board

import (
	"fmt"

	"github.com/kuragecore/diecore/internal/gridtext"
)

// Board is a Width x Height grid of small unsigned cell values
// (alphabet size <= MaxAlphabet+1). It is deep-copied on construction and
// on Clone, so callers can freely mutate a Board without aliasing another
// session's state.
type Board struct {
	Width, Height int
	Cells         [][]uint8 // Cells[y][x]
	Corners       CornerCells
}

// NewBoard constructs a Board from a deep copy of values. It returns
// ErrEmptyBoard if values has no rows or no columns, ErrRaggedRows if row
// lengths differ, and ErrCellOutOfRange if any value exceeds MaxAlphabet.
//
// Complexity: O(W*H) time and memory.
func NewBoard(values [][]uint8) (*Board, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	height, width := len(values), len(values[0])
	cells := make([][]uint8, height)
	for y, row := range values {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
		cells[y] = make([]uint8, width)
		for x, v := range row {
			if v > MaxAlphabet {
				return nil, ErrCellOutOfRange
			}
			cells[y][x] = v
		}
	}

	return &Board{
		Width:   width,
		Height:  height,
		Cells:   cells,
		Corners: NewCornerCells(width, height),
	}, nil
}

// FromRows parses W-digit strings (one per row, digits '0'..'3') into a
// Board, sharing its row-shape validation with die.NewDieFromRows via
// internal/gridtext.
func FromRows(rows []string) (*Board, error) {
	raw, err := gridtext.Parse(rows)
	if err != nil {
		return nil, translateGridtextErr(err)
	}
	values := make([][]uint8, len(raw))
	for y, row := range raw {
		values[y] = make([]uint8, len(row))
		for x, b := range row {
			if b < '0' || b > '0'+MaxAlphabet {
				return nil, ErrCellOutOfRange
			}
			values[y][x] = b - '0'
		}
	}

	return NewBoard(values)
}

func translateGridtextErr(err error) error {
	switch err.Error() {
	case "gridtext: input must have at least one row and one column":
		return ErrEmptyBoard
	case "gridtext: all rows must have the same length":
		return ErrRaggedRows
	default:
		return err
	}
}

// InBounds reports whether (x,y) lies within the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Clone returns a deep copy of b, used for the coarse aligner's derived
// target-board copies (spec: "owned by their enclosing call and discarded
// on return").
func (b *Board) Clone() *Board {
	cells := make([][]uint8, b.Height)
	for y := range b.Cells {
		cells[y] = make([]uint8, b.Width)
		copy(cells[y], b.Cells[y])
	}

	return &Board{
		Width:   b.Width,
		Height:  b.Height,
		Cells:   cells,
		Corners: b.Corners,
	}
}

// SameShape reports whether b and other share identical dimensions.
func (b *Board) SameShape(other *Board) bool {
	return b.Width == other.Width && b.Height == other.Height
}

// Equal reports whether b and other have identical shape and cell values.
func (b *Board) Equal(other *Board) bool {
	if !b.SameShape(other) {
		return false
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}

	return true
}

// At returns the cell value at (x,y).
func (b *Board) At(x, y int) uint8 {
	return b.Cells[y][x]
}

// Set assigns the cell value at (x,y).
func (b *Board) Set(x, y int, v uint8) {
	b.Cells[y][x] = v
}

// ValueCounts returns the multiset of cell values as a histogram, used by
// tests asserting the permutation-preservation invariant (I1/P2).
func (b *Board) ValueCounts() map[uint8]int {
	counts := make(map[uint8]int, MaxAlphabet+1)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			counts[b.Cells[y][x]]++
		}
	}

	return counts
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []uint8 {
	out := make([]uint8, b.Width)
	copy(out, b.Cells[y])

	return out
}

// Column returns a copy of column x.
func (b *Board) Column(x int) []uint8 {
	out := make([]uint8, b.Height)
	for y := 0; y < b.Height; y++ {
		out[y] = b.Cells[y][x]
	}

	return out
}

// String renders the board as newline-joined digit rows, for diagnostics.
func (b *Board) String() string {
	s := make([]byte, 0, b.Height*(b.Width+1))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			s = append(s, '0'+b.Cells[y][x])
		}
		if y != b.Height-1 {
			s = append(s, '\n')
		}
	}

	return string(s)
}

// EdgeValues returns the sequence of cell values along the given edge, in
// increasing index order (left-to-right for N/S, top-to-bottom for W/E).
func (b *Board) EdgeValues(edge Edge) []uint8 {
	switch edge {
	case EdgeN, EdgeS:
		return b.Row(b.Corners.Index(edge))
	case EdgeW, EdgeE:
		return b.Column(b.Corners.Index(edge))
	default:
		panic(fmt.Sprintf("board: EdgeValues called with invalid edge %v", edge))
	}
}

// SetEdgeValue assigns the cell value at position i along the given edge
// (the column index for N/S, the row index for W/E).
func (b *Board) SetEdgeValue(edge Edge, i int, v uint8) {
	switch edge {
	case EdgeN, EdgeS:
		b.Set(i, b.Corners.Index(edge), v)
	case EdgeW, EdgeE:
		b.Set(b.Corners.Index(edge), i, v)
	default:
		panic(fmt.Sprintf("board: SetEdgeValue called with invalid edge %v", edge))
	}
}

// EdgeCell returns the board coordinate of position i along the given edge.
func (b *Board) EdgeCell(edge Edge, i int) Cell {
	switch edge {
	case EdgeN, EdgeS:
		return Cell{X: i, Y: b.Corners.Index(edge)}
	case EdgeW, EdgeE:
		return Cell{X: b.Corners.Index(edge), Y: i}
	default:
		panic(fmt.Sprintf("board: EdgeCell called with invalid edge %v", edge))
	}
}

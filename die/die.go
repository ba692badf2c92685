package die

import "github.com/kuragecore/diecore/internal/gridtext"

// NewDie builds a general (user-supplied) die from a deep copy of a boolean
// stencil and the given ID. Caller is responsible for assigning IDs >= 26
// so they never collide with the standard catalog's 1..25.
func NewDie(id int, stencil [][]bool) (*CuttingDie, error) {
	if len(stencil) == 0 || len(stencil[0]) == 0 {
		return nil, ErrEmptyStencil
	}
	height, width := len(stencil), len(stencil[0])
	copied := make([][]bool, height)
	for y, row := range stencil {
		if len(row) != width {
			return nil, ErrRaggedStencil
		}
		copied[y] = make([]bool, width)
		copy(copied[y], row)
	}

	return &CuttingDie{
		ID:      id,
		Width:   width,
		Height:  height,
		Type:    general,
		stencil: copied,
	}, nil
}

// NewDieFromRows parses a general die's stencil from w-character binary
// rows ('0'/'1'), sharing row-shape validation with board.FromRows via
// internal/gridtext.
func NewDieFromRows(id int, rows []string) (*CuttingDie, error) {
	raw, err := gridtext.Parse(rows)
	if err != nil {
		switch err {
		case gridtext.ErrEmpty:
			return nil, ErrEmptyStencil
		case gridtext.ErrRagged:
			return nil, ErrRaggedStencil
		default:
			return nil, err
		}
	}
	stencil := make([][]bool, len(raw))
	for y, row := range raw {
		stencil[y] = make([]bool, len(row))
		for x, b := range row {
			stencil[y][x] = b == '1'
		}
	}

	return NewDie(id, stencil)
}

// NewStandardDie builds one of the three canonical stencil shapes at the
// given power-of-two size. size must be 2^0 .. 2^MaxPow2Exp.
func NewStandardDie(id int, size int, t Type) (*CuttingDie, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrInvalidSize
	}
	if !t.IsStandard() {
		return nil, ErrUnknownStandardDieType
	}

	stencil := make([][]bool, size)
	for y := 0; y < size; y++ {
		stencil[y] = make([]bool, size)
		rowOn := t != EvenRow || y%2 == 0
		for x := 0; x < size; x++ {
			colOn := t != EvenColumn || x%2 == 0
			stencil[y][x] = rowOn && colOn
		}
	}

	return &CuttingDie{
		ID:      id,
		Width:   size,
		Height:  size,
		Type:    t,
		stencil: stencil,
	}, nil
}

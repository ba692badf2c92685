package cut

import "errors"

// Sentinel errors for the die application primitive.
var (
	// ErrOutOfBounds indicates the die anchor places no stencil cell on the board.
	ErrOutOfBounds = errors.New("cut: die anchor places no stencil cell on the board")
	// ErrUnsupportedDirection indicates a direction outside {Up, Down, Left, Right}.
	ErrUnsupportedDirection = errors.New("cut: unsupported direction")
)

package debugboard

import (
	"math/rand"

	"github.com/kuragecore/diecore/board"
)

// Generate builds a width x height start board with cell values drawn
// uniformly from {0,1,2,3} and a goal board holding the same multiset
// of values in a random order, using rng for every random choice.
func Generate(rng *rand.Rand, width, height int) (start, goal *board.Board, err error) {
	cells := make([]uint8, width*height)
	for i := range cells {
		cells[i] = uint8(rng.Intn(board.MaxAlphabet + 1))
	}

	startGrid := make([][]uint8, height)
	for y := 0; y < height; y++ {
		startGrid[y] = append([]uint8(nil), cells[y*width:(y+1)*width]...)
	}
	start, err = board.NewBoard(startGrid)
	if err != nil {
		return nil, nil, err
	}

	shuffled := append([]uint8(nil), cells...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	goalGrid := make([][]uint8, height)
	for y := 0; y < height; y++ {
		goalGrid[y] = append([]uint8(nil), shuffled[y*width:(y+1)*width]...)
	}
	goal, err = board.NewBoard(goalGrid)
	if err != nil {
		return nil, nil, err
	}

	return start, goal, nil
}

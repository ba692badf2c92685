package edgeswap

import "math/bits"

// decomposeToPowersOfTwo returns the binary decomposition of n as a
// descending sequence of powers of two summing to n. It is the
// bit-level contract: equivalent to the "while margin: size =
// 2^floor(log2(margin))" loop, but computed directly rather than by
// repeated division.
func decomposeToPowersOfTwo(n int) []int {
	if n <= 0 {
		return nil
	}
	sizes := make([]int, 0, bits.OnesCount(uint(n)))
	for n > 0 {
		top := bits.Len(uint(n)) - 1
		size := 1 << top
		sizes = append(sizes, size)
		n -= size
	}

	return sizes
}

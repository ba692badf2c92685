package align

// arrangeable reports whether line vals has at least one cell differing
// from tgt, and at least one such differing cell has a counterpart
// elsewhere in the line bearing the needed target value.
func arrangeable(vals, tgt []uint8) bool {
	for i := range vals {
		if vals[i] == tgt[i] {
			continue
		}
		for j := range vals {
			if j != i && vals[j] == tgt[i] {
				return true
			}
		}
	}

	return false
}

package t2048

// ResolveLine collapses a single line toward index 0.
// Zeros are dropped first, then equal neighbours merge pairwise from the
// front: each tile takes part in at most one merge per move, so [2,2,2]
// becomes [4,2]. The result is padded with zeros to the input length.
// Returns the resolved line and the score gained from merges.
func ResolveLine(line []int) (result []int, score int) {
	result = make([]int, 0, len(line))
	pending := 0 // 0 means no tile is waiting for a partner

	for _, v := range line {
		if v == 0 {
			continue
		}

		switch pending {
		case 0:
			pending = v
		case v:
			// Merge with the waiting tile
			result = append(result, pending*2)
			score += pending * 2
			pending = 0
		default:
			// No match, emit the waiting tile unmerged
			result = append(result, pending)
			pending = v
		}
	}

	if pending != 0 {
		result = append(result, pending)
	}
	for len(result) < len(line) {
		result = append(result, 0)
	}

	return result, score
}

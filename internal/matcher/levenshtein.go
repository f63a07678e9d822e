package matcher

// levenshtein computes the edit distance between two strings with the
// two-row variant of the classic dynamic program. Early exits: identical
// strings cost 0, an empty string costs the other's length, and a length
// gap over half the longer string returns max(len) without filling the
// matrix, a cheap lower bound that is enough to reject the candidate.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	longer := max(len(ra), len(rb))

	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}

	if diff > longer/2 {
		return longer
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// similarity maps edit distance into [0,1]: 1 - distance/max(len).
// Two empty strings are identical.
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	longer := max(len([]rune(a)), len([]rune(b)))

	return 1.0 - float64(levenshtein(a, b))/float64(longer)
}

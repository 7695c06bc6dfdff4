package spell

// Distance computes the Damerau-Levenshtein optimal string alignment
// edit distance between a and b, where an adjacent transposition
// counts as a single edit. The computation is bounded: it returns -1
// as soon as no alignment within maxDistance can succeed, using a
// banded dynamic program instead of the full O(n*m) table.
//
// Distance is a pure function and safe for concurrent use.
func Distance(a, b string, maxDistance int) int {
	if a == "" || b == "" {
		return emptyDistance(a, b, maxDistance)
	}
	if maxDistance <= 0 {
		if a == b {
			return 0
		}
		return -1
	}

	r1 := []rune(a)
	r2 := []rune(b)
	// keep the shorter string in r1
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2)-len(r1) > maxDistance {
		return -1
	}

	len1, len2, start := trimCommonAffixes(r1, r2)
	if len1 == 0 {
		if len2 <= maxDistance {
			return len2
		}
		return -1
	}

	costs := make([]int, len2)
	prevCosts := make([]int, len2)
	if maxDistance < len2 {
		return bandedDistance(r1, r2, len1, len2, start, maxDistance, costs, prevCosts)
	}
	return fullDistance(r1, r2, len1, len2, start, costs, prevCosts)
}

// fullDistance runs the unbounded OSA dynamic program over the
// affix-trimmed region.
func fullDistance(r1, r2 []rune, len1, len2, start int, costs, prevCosts []int) int {
	for j := 0; j < len2; j++ {
		costs[j] = j + 1
	}
	var char1, prevChar1 rune
	var current int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[start+i]
		var char2, prevChar2 rune
		left := i
		above := i
		nextTransCost := 0
		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCosts[j]
			prevCosts[j] = current
			current = left
			left = costs[j]
			prevChar2 = char2
			char2 = r2[start+j]
			if char1 != char2 {
				if above < current {
					current = above
				}
				if left < current {
					current = left
				}
				current++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < current {
					current = thisTransCost + 1
				}
			}
			costs[j] = current
			above = current
		}
	}
	return current
}

// bandedDistance is the distance-limited variant: only cells within
// maxDistance of the diagonal are evaluated, and the row exit test
// aborts once the band can no longer reach maxDistance.
func bandedDistance(r1, r2 []rune, len1, len2, start, maxDistance int, costs, prevCosts []int) int {
	for j := 0; j < maxDistance; j++ {
		costs[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		costs[j] = maxDistance + 1
	}
	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance
	var char1, prevChar1 rune
	var current int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[start+i]
		var char2, prevChar2 rune
		left := i
		above := i
		nextTransCost := 0
		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}
		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevCosts[j]
			prevCosts[j] = current
			current = left
			left = costs[j]
			prevChar2 = char2
			char2 = r2[start+j]
			if char1 != char2 {
				if above < current {
					current = above
				}
				if left < current {
					current = left
				}
				current++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < current {
					current = thisTransCost + 1
				}
			}
			costs[j] = current
			above = current
		}
		if costs[i+lenDiff] > maxDistance {
			return -1
		}
	}
	if current <= maxDistance {
		return current
	}
	return -1
}

// emptyDistance handles lookups where one side is the empty string.
func emptyDistance(a, b string, maxDistance int) int {
	if a == b {
		return 0
	}
	distance := len([]rune(a))
	if n := len([]rune(b)); n > distance {
		distance = n
	}
	if distance > maxDistance {
		return -1
	}
	return distance
}

// trimCommonAffixes drops the shared prefix and suffix, which cannot
// contribute to the distance.
func trimCommonAffixes(r1, r2 []rune) (len1, len2, start int) {
	len1 = len(r1)
	len2 = len(r2)
	for start < len1 && start < len2 && r1[start] == r2[start] {
		start++
	}
	len1 -= start
	len2 -= start
	for len1 > 0 && len2 > 0 && r1[start+len1-1] == r2[start+len2-1] {
		len1--
		len2--
	}
	return len1, len2, start
}

package search

import "bytes"

// GroupSubstrings enumerates every contiguous substring of haystack that
// contains at least one occurrence of every byte in group, tallied by
// substring content: occurrences of the same content at different
// positions increment one shared entry.
//
// For each anchor the candidate span starts at the full haystack length
// and shrinks one byte at a time. The shrink loop never exits early:
// whether a span contains the whole group is not monotonic in the span
// width (the end of the span moves, not just its size), so every width is
// tested and gaps between qualifying widths are expected.
//
// Cost is O(len(haystack)² · len(group)). This operation is meant for
// exploratory use on small inputs, not large-haystack throughput.
//
// Panics if group is empty: with nothing required, every substring would
// qualify and the result is meaningless.
func GroupSubstrings(haystack []byte, group ...byte) map[string]int {
	if len(group) == 0 {
		panic("substr: empty character group")
	}
	tally := make(map[string]int)
	for start := 0; start < len(haystack); start++ {
		for end := len(haystack); end > start; end-- {
			if containsGroup(haystack[start:end], group) {
				tally[string(haystack[start:end])]++
			}
		}
	}
	return tally
}

func containsGroup(span []byte, group []byte) bool {
	for _, b := range group {
		if bytes.IndexByte(span, b) < 0 {
			return false
		}
	}
	return true
}

package search

// The scalar functions are the reference algorithm: brute-force window
// comparison with no failure function or skip table. The vector path is
// tested for bit-exact agreement against them, so they stay naive on
// purpose.

// Contains reports whether needle occurs in haystack.
// Panics if needle is empty or longer than haystack.
func Contains(haystack, needle []byte) bool {
	checkPair(haystack, needle)
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			return true
		}
	}
	return false
}

// Find returns the span of the first match of needle in haystack.
// Panics if needle is empty or longer than haystack.
func Find(haystack, needle []byte) (Span, bool) {
	checkPair(haystack, needle)
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			return Span{i, i + len(needle)}, true
		}
	}
	return Span{}, false
}

// FindAll returns the spans of all matches of needle in haystack in
// ascending start order. The scan resumes one byte after each match, so
// overlapping matches are all reported: needle "bbb" against "bbbb"
// yields spans at 0 and 1. An empty result is a normal outcome.
// Panics if needle is empty or longer than haystack.
func FindAll(haystack, needle []byte) []Span {
	checkPair(haystack, needle)
	var spans []Span
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			spans = append(spans, Span{i, i + len(needle)})
		}
	}
	return spans
}

// Count returns the number of matches of needle in haystack, counting
// overlaps, without allocating. Count(h, n) == len(FindAll(h, n)).
// Panics if needle is empty or longer than haystack.
func Count(haystack, needle []byte) int {
	checkPair(haystack, needle)
	n := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if matchAt(haystack, needle, i) {
			n++
		}
	}
	return n
}

// matchAt compares needle against haystack at anchor i, aborting at the
// first mismatching byte. Caller guarantees i+len(needle) <= len(haystack).
func matchAt(haystack, needle []byte, i int) bool {
	for j := 0; j < len(needle); j++ {
		if haystack[i+j] != needle[j] {
			return false
		}
	}
	return true
}

package search

// Span is a half-open byte-index interval [Start, End) into a haystack
// identifying one match. For a match of needle n, End-Start == len(n).
type Span struct {
	Start int
	End   int
}

func checkPair(haystack, needle []byte) {
	if len(needle) == 0 {
		panic("substr: empty needle")
	}
	if len(needle) > len(haystack) {
		panic("substr: needle longer than haystack")
	}
}

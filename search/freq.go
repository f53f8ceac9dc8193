package search

import "github.com/mhr3/substr/internal/vec"

// CountBytes tallies how often each queried byte occurs in haystack.
// The result covers exactly the queried bytes (duplicates collapse into
// one entry) and includes zero-valued entries for bytes that never occur.
// An empty query set returns an empty tally; a zero-length haystack is
// fine. One pass over the haystack regardless of the number of queries.
func CountBytes(haystack []byte, queries ...byte) map[byte]int {
	tally := make(map[byte]int, len(queries))
	if len(queries) == 0 {
		return tally
	}
	var table [256]int
	for _, b := range haystack {
		table[b]++
	}
	for _, q := range queries {
		tally[q] = table[q]
	}
	return tally
}

// CountBytesVector is the chunked counterpart of CountBytes: one
// lane-equality scan of the haystack per distinct queried byte.
// Bit-identical to CountBytes for every input, including haystacks whose
// length is not a multiple of the chunk width.
func CountBytesVector(haystack []byte, queries ...byte) map[byte]int {
	tally := make(map[byte]int, len(queries))
	for _, q := range queries {
		if _, done := tally[q]; done {
			continue
		}
		tally[q] = countByteVector(haystack, q)
	}
	return tally
}

func countByteVector(haystack []byte, q byte) int {
	n := 0
	for off := 0; off < len(haystack); off += vec.Width {
		mask := vec.Load(haystack, off).EqMask(q)
		// Clamp to the true haystack length so a query for 0x00 never
		// counts the trailing chunk's zero padding.
		n += mask.MatchCountN(len(haystack) - off)
	}
	return n
}

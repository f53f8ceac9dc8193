package search

import "github.com/mhr3/substr/internal/vec"

// vectorCutover is the haystack length below which the chunk setup costs
// more than it saves and prepared searches stay scalar.
const vectorCutover = 2 * vec.Width

// Needle is a prepared pattern for repeated searches over many haystacks.
// Build once with MakeNeedle, reuse from any number of goroutines.
type Needle struct {
	pat []byte
}

// MakeNeedle copies pat into a prepared Needle.
// Panics if pat is empty.
func MakeNeedle(pat []byte) Needle {
	if len(pat) == 0 {
		panic("substr: empty needle")
	}
	return Needle{pat: append([]byte(nil), pat...)}
}

// Bytes returns a copy of the pattern.
func (n Needle) Bytes() []byte {
	return append([]byte(nil), n.pat...)
}

// Len returns the pattern length in bytes.
func (n Needle) Len() int {
	return len(n.pat)
}

// Contains reports whether the pattern occurs in haystack, picking the
// scalar or vector path by haystack size.
// Panics if the pattern is longer than haystack.
func (n Needle) Contains(haystack []byte) bool {
	if len(haystack) >= vectorCutover {
		return ContainsVector(haystack, n.pat)
	}
	return Contains(haystack, n.pat)
}

// FindAll returns the spans of all matches of the pattern in haystack,
// overlaps included.
// Panics if the pattern is longer than haystack.
func (n Needle) FindAll(haystack []byte) []Span {
	if len(haystack) >= vectorCutover {
		return FindAllVector(haystack, n.pat)
	}
	return FindAll(haystack, n.pat)
}

// Count returns the number of matches of the pattern in haystack,
// counting overlaps.
// Panics if the pattern is longer than haystack.
func (n Needle) Count(haystack []byte) int {
	if len(haystack) >= vectorCutover {
		return CountVector(haystack, n.pat)
	}
	return Count(haystack, n.pat)
}

package search

import "github.com/mhr3/substr/internal/vec"

// The vector functions process the haystack in vec.Width-byte chunks.
// Per chunk, every lane is compared against the needle's first byte at
// once; chunks with no candidate lane are rejected without looking at the
// rest of the needle. Candidates are verified against the full haystack
// slice, never the padded chunk, so matches straddling a chunk boundary
// are found and zero padding can never complete a match.

// maxDepthNeedle bounds CountVector's per-lane depth counters, which are
// single bytes. Longer needles take the scalar path.
const maxDepthNeedle = 255

// ContainsVector reports whether needle occurs in haystack.
// Equivalent to Contains for every valid input.
func ContainsVector(haystack, needle []byte) bool {
	checkPair(haystack, needle)
	first := needle[0]
	last := len(haystack) - len(needle)
	for off := 0; off <= last; off += vec.Width {
		mask := vec.Load(haystack, off).EqMask(first)
		if mask.Zero() {
			continue
		}
		for lane := mask.NextLane(0); lane >= 0; lane = mask.NextLane(lane + 1) {
			at := off + lane
			if at > last {
				break
			}
			if matchAt(haystack, needle, at) {
				return true
			}
		}
	}
	return false
}

// FindAllVector returns the spans of all matches of needle in haystack,
// overlaps included. Equivalent to FindAll for every valid input.
func FindAllVector(haystack, needle []byte) []Span {
	checkPair(haystack, needle)
	var spans []Span
	first := needle[0]
	last := len(haystack) - len(needle)
	for off := 0; off <= last; off += vec.Width {
		mask := vec.Load(haystack, off).EqMask(first)
		if mask.Zero() {
			continue
		}
		for lane := mask.NextLane(0); lane >= 0; lane = mask.NextLane(lane + 1) {
			at := off + lane
			if at > last {
				break
			}
			if matchAt(haystack, needle, at) {
				spans = append(spans, Span{at, at + len(needle)})
			}
		}
	}
	return spans
}

// CountVector returns the number of matches of needle in haystack,
// counting overlaps exactly like Count.
//
// Per chunk it keeps a per-lane match-depth vector: the lane for anchor i
// is incremented once for every needle position j where
// haystack[i+j] == needle[j]. Each of the len(needle) comparisons can
// raise a lane by at most one, so a lane reaches len(needle) if and only
// if every needle byte matched at that anchor. Lanes whose anchor would
// run past the end of the haystack are excluded from the tally, which is
// also what keeps zero padding from ever completing a match.
func CountVector(haystack, needle []byte) int {
	checkPair(haystack, needle)
	if len(needle) > maxDepthNeedle {
		return Count(haystack, needle)
	}
	count := 0
	last := len(haystack) - len(needle)
	for off := 0; off <= last; off += vec.Width {
		firstEq := vec.Load(haystack, off).EqMask(needle[0])
		if firstEq.Zero() {
			continue
		}
		depth := firstEq.Counts()
		for j := 1; j < len(needle); j++ {
			eq := vec.Load(haystack, off+j).EqMask(needle[j])
			depth = depth.AddCounts(eq.Counts())
		}
		full := depth.EqMask(byte(len(needle)))
		count += full.MatchCountN(last - off + 1)
	}
	return count
}

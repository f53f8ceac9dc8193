// Package modify rewrites caller-owned strings in place: appending the
// textual form of a value, and non-overlapping find-and-replace.
package modify

import "github.com/mhr3/substr/builder"

// Append stringifies v (with builder.Append's rules) and appends it to
// *base in place.
func Append(base *string, v any) {
	b := builder.New()
	b.Append(*base).Append(v)
	*base = b.String()
}

// Replace rewrites *base in place, substituting every non-overlapping
// occurrence of find with replacement. Matching is the same left-to-right
// byte scan as the search package's scalar matcher: the first full match
// at a position wins and the scan resumes after the matched span, not one
// byte ahead, so replaced text is never rescanned.
//
// Panics if find is empty or longer than *base.
func Replace(base *string, find, replacement string) {
	src := *base
	if len(find) == 0 {
		panic("substr: empty needle")
	}
	if len(find) > len(src) {
		panic("substr: needle longer than haystack")
	}

	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		if i+len(find) <= len(src) && src[i:i+len(find)] == find {
			out = append(out, replacement...)
			i += len(find)
			continue
		}
		out = append(out, src[i])
		i++
	}
	*base = string(out)
}

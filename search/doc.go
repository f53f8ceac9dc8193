// Package search implements exact byte-oriented substring search and
// counting: first match, all overlapping matches, per-byte frequency
// tallies, and character-group substring enumeration.
//
// Every operation exists in two forms with identical observable behavior:
// a scalar reference implementation (deliberately naive window comparison)
// and a vectorized fast path that scans the haystack in fixed 64-byte
// chunks. The vector functions are a throughput optimization only; for any
// valid input they return bit-identical results to their scalar
// counterparts.
//
// All operations work on raw bytes. Inputs are never retained past the
// call, and no state is shared between calls, so concurrent use over
// disjoint inputs needs no coordination.
//
// Preconditions are programming-contract violations, not runtime errors:
// passing an empty needle, a needle longer than the haystack, or an empty
// character group panics.
package search

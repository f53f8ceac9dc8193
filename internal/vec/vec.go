// Package vec implements fixed-width chunked byte comparison on top of
// uint64 words (SWAR). A Chunk covers 64 haystack bytes split into 8 lanes
// per word; equality masks mark matching lanes with 0x80 so positions can
// be extracted with trailing-zero counts and tallied with popcounts.
package vec

import (
	"encoding/binary"
	"math/bits"
)

// Width is the number of haystack bytes covered by one Chunk.
const Width = 64

const words = Width / 8

const (
	lanesLo = 0x0101010101010101
	lanesHi = 0x8080808080808080
)

// Chunk is one fixed-width unit of the haystack, or a per-lane mask/counter
// vector derived from one.
type Chunk [words]uint64

// Load reads Width bytes of b starting at off. Bytes past len(b) read as
// zero; callers must clamp any result that could be affected by padding to
// the true input length.
func Load(b []byte, off int) Chunk {
	var c Chunk
	if off >= len(b) {
		return c
	}
	if off+Width <= len(b) {
		s := b[off:]
		for i := range c {
			c[i] = binary.LittleEndian.Uint64(s[i*8:])
		}
		return c
	}
	var tail [Width]byte
	copy(tail[:], b[off:])
	for i := range c {
		c[i] = binary.LittleEndian.Uint64(tail[i*8:])
	}
	return c
}

// Broadcast replicates v into every lane of a word.
func Broadcast(v byte) uint64 {
	return uint64(v) * lanesLo
}

// EqMask compares every lane of c against v and returns a mask Chunk with
// 0x80 in matching lanes and 0x00 elsewhere.
//
// The usual (x-lo)&^x&hi zero-byte trick is only reliable up to the lowest
// matching lane because the subtraction borrows across lanes. Counting and
// depth accumulation need every lane correct, so this uses the borrow-free
// form: a lane's high bit survives iff the lane is nonzero after XOR.
func (c Chunk) EqMask(v byte) Chunk {
	m := Broadcast(v)
	var out Chunk
	for i, w := range c {
		x := w ^ m
		out[i] = ^(((x &^ lanesHi) + (lanesLo * 0x7f)) | x) & lanesHi
	}
	return out
}

// Zero reports whether no lane is set.
func (c Chunk) Zero() bool {
	var or uint64
	for _, w := range c {
		or |= w
	}
	return or == 0
}

// Counts converts a 0x80-lane mask into a 0x01-lane counter vector.
func (c Chunk) Counts() Chunk {
	var out Chunk
	for i, w := range c {
		out[i] = w >> 7
	}
	return out
}

// AddCounts adds b to c lane-wise. Lane values must stay below 256 or they
// carry into the neighboring lane; callers bound them by the needle length.
func (c Chunk) AddCounts(b Chunk) Chunk {
	var out Chunk
	for i, w := range c {
		out[i] = w + b[i]
	}
	return out
}

// MatchCount returns the number of set lanes in a mask Chunk.
func (c Chunk) MatchCount() int {
	n := 0
	for _, w := range c {
		n += bits.OnesCount64(w)
	}
	return n
}

// MatchCountN returns the number of set lanes among the first limit lanes.
// Used for trailing chunks where lanes at or past the true haystack length
// must not be counted.
func (c Chunk) MatchCountN(limit int) int {
	if limit >= Width {
		return c.MatchCount()
	}
	if limit <= 0 {
		return 0
	}
	n := 0
	full := limit / 8
	for i := 0; i < full; i++ {
		n += bits.OnesCount64(c[i])
	}
	if rem := limit % 8; rem > 0 {
		keep := uint64(1)<<(uint(rem)*8) - 1
		n += bits.OnesCount64(c[full] & keep)
	}
	return n
}

// NextLane returns the index of the first set lane at or after from, or -1.
func (c Chunk) NextLane(from int) int {
	if from < 0 {
		from = 0
	}
	for i := from / 8; i < words; i++ {
		w := c[i]
		if i == from/8 {
			w &= ^uint64(0) << (uint(from%8) * 8)
		}
		if w != 0 {
			return i*8 + bits.TrailingZeros64(w)/8
		}
	}
	return -1
}

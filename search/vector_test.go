package search

import (
	"bytes"
	"math/rand"
	"testing"

	segascii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/require"
)

func makeBytes(rng *rand.Rand, n int, alphabet string) []byte {
	data := make([]byte, n)
	for i := range data {
		if alphabet == "" {
			data[i] = byte(rng.Uint32())
		} else {
			data[i] = alphabet[rng.Intn(len(alphabet))]
		}
	}
	return data
}

func TestVectorFixtures(t *testing.T) {
	h := []byte("123test113test444testtest")
	n := []byte("test")
	require.True(t, ContainsVector(h, n))
	require.Equal(t, []Span{{3, 7}, {10, 14}, {17, 21}, {21, 25}}, FindAllVector(h, n))
	require.Equal(t, 4, CountVector(h, n))

	require.False(t, ContainsVector([]byte("123123123tes123123123"), n))
}

func TestVectorChunkStraddle(t *testing.T) {
	// Matches that span the 64-byte chunk boundary must not be lost to
	// first-byte-only chunk rejection.
	needle := []byte("needle")
	for pos := 55; pos <= 70; pos++ {
		h := bytes.Repeat([]byte("x"), 128)
		copy(h[pos:], needle)
		require.True(t, ContainsVector(h, needle), "pos %d", pos)
		require.Equal(t, []Span{{pos, pos + len(needle)}}, FindAllVector(h, needle), "pos %d", pos)
		require.Equal(t, 1, CountVector(h, needle), "pos %d", pos)
	}

	// Match ending exactly at the haystack end.
	h := bytes.Repeat([]byte("x"), 128)
	copy(h[128-len(needle):], needle)
	require.Equal(t, []Span{{122, 128}}, FindAllVector(h, needle))
}

func TestVectorPaddingNoFalseMatch(t *testing.T) {
	// The trailing chunk is zero padded; a needle of zero bytes must not
	// match into the padding.
	h := append(bytes.Repeat([]byte("x"), 64), 0)
	n := []byte{0, 0}
	require.False(t, ContainsVector(h, n))
	require.Empty(t, FindAllVector(h, n))
	require.Zero(t, CountVector(h, n))

	// With two real zero bytes the same needle matches exactly once.
	h2 := append(bytes.Repeat([]byte("x"), 64), 0, 0)
	require.Equal(t, []Span{{64, 66}}, FindAllVector(h2, n))
	require.Equal(t, 1, CountVector(h2, n))
}

func TestScalarVectorEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	alphabets := []string{"ab", "abcdefgh", ""} // adversarial, ascii, binary

	for trial := 0; trial < 600; trial++ {
		alphabet := alphabets[trial%len(alphabets)]
		hlen := 1 + rng.Intn(300)
		nlen := 1 + rng.Intn(8)
		if nlen > hlen {
			nlen = hlen
		}
		h := makeBytes(rng, hlen, alphabet)
		n := makeBytes(rng, nlen, alphabet)
		if trial%2 == 0 {
			copy(h[rng.Intn(hlen-nlen+1):], n) // plant at least one match
		}
		if alphabet != "" {
			require.True(t, segascii.Valid(h)) // generator sanity
		}

		require.Equal(t, bytes.Contains(h, n), Contains(h, n), "h=%q n=%q", h, n)
		require.Equal(t, Contains(h, n), ContainsVector(h, n), "h=%q n=%q", h, n)
		require.Equal(t, FindAll(h, n), FindAllVector(h, n), "h=%q n=%q", h, n)
		require.Equal(t, Count(h, n), CountVector(h, n), "h=%q n=%q", h, n)
		require.Len(t, FindAll(h, n), Count(h, n))
	}
}

func TestCountVectorOverlapConvention(t *testing.T) {
	// Vector counting reports overlapping occurrences exactly like the
	// scalar enumeration, including runs crossing chunk boundaries.
	require.Equal(t, 3, CountVector([]byte("aaaaa"), []byte("aaa")))
	require.Equal(t, 2, CountVector([]byte("bbbb"), []byte("bbb")))

	h := bytes.Repeat([]byte("a"), 200)
	n := []byte("aaa")
	require.Equal(t, 198, CountVector(h, n))
	require.Equal(t, Count(h, n), CountVector(h, n))
}

func TestCountVectorLongNeedle(t *testing.T) {
	// Needles longer than a lane counter can hold take the scalar path.
	rng := rand.New(rand.NewSource(7))
	h := makeBytes(rng, 400, "abc")
	n := append([]byte(nil), h[50:350]...)
	require.Equal(t, Count(h, n), CountVector(h, n))
	require.GreaterOrEqual(t, CountVector(h, n), 1)
}

func TestVectorPreconditionPanics(t *testing.T) {
	h := []byte("haystack")
	require.Panics(t, func() { ContainsVector(h, nil) })
	require.Panics(t, func() { FindAllVector(h, nil) })
	require.Panics(t, func() { CountVector(h, nil) })
	require.Panics(t, func() { CountVector(h, []byte("longer than it")) })
}

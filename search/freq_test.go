package search

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const freqFixture = "abbccc748237489237498237482374982374892734987423982734982347984732984ccc"

func TestCountBytes(t *testing.T) {
	got := CountBytes([]byte(freqFixture), 'a', 'b', 'c')
	assert.Equal(t, map[byte]int{'a': 1, 'b': 2, 'c': 6}, got)
}

func TestCountBytesVector(t *testing.T) {
	got := CountBytesVector([]byte(freqFixture), 'a', 'b', 'c')
	assert.Equal(t, map[byte]int{'a': 1, 'b': 2, 'c': 6}, got)
}

func TestCountBytesZeroEntries(t *testing.T) {
	// Queried bytes that never occur still get an entry.
	got := CountBytes([]byte("aaa"), 'a', 'z')
	assert.Equal(t, map[byte]int{'a': 3, 'z': 0}, got)
	assert.Equal(t, got, CountBytesVector([]byte("aaa"), 'a', 'z'))
}

func TestCountBytesDuplicateQueries(t *testing.T) {
	got := CountBytes([]byte("abab"), 'a', 'a', 'b')
	assert.Equal(t, map[byte]int{'a': 2, 'b': 2}, got)
	assert.Equal(t, got, CountBytesVector([]byte("abab"), 'a', 'a', 'b'))
}

func TestCountBytesDegenerate(t *testing.T) {
	// An empty query set is not a violation: empty tally, no panic.
	assert.Empty(t, CountBytes([]byte("abc")))
	assert.Empty(t, CountBytesVector([]byte("abc")))

	// Nor is an empty haystack: all-zero tally.
	assert.Equal(t, map[byte]int{'a': 0}, CountBytes(nil, 'a'))
	assert.Equal(t, map[byte]int{'a': 0}, CountBytesVector(nil, 'a'))
}

func TestCountBytesEquivalence(t *testing.T) {
	// Scalar and vector tallies must agree bit for bit for every input,
	// including lengths that are not a multiple of the chunk width and
	// queries for the padding byte 0x00.
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		h := makeBytes(rng, rng.Intn(260), "")
		queries := makeBytes(rng, 1+rng.Intn(6), "")
		queries = append(queries, 0) // always probe the padding byte

		scalar := CountBytes(h, queries...)
		vector := CountBytesVector(h, queries...)
		require.Equal(t, scalar, vector, "len(h)=%d queries=%v", len(h), queries)
		for q, n := range scalar {
			require.Equal(t, bytes.Count(h, []byte{q}), n)
		}
	}
}

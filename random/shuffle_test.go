package random

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleKnownPermutation(t *testing.T) {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(NewXoshiro128Plus(0x1234), v)
	assert.Equal(t, []int{2, 1, 4, 7, 3, 5, 6, 0}, v)
}

func TestShuffleIsPermutation(t *testing.T) {
	g := NewXoroshiro256Plus(5)
	for n := 0; n < 64; n++ {
		v := make([]int, n)
		for i := range v {
			v[i] = i % 7
		}
		orig := slices.Clone(v)

		Shuffle(g, v)

		slices.Sort(v)
		slices.Sort(orig)
		require.Equal(t, orig, v, "length %d", n)
	}
}

func TestShuffleSingle(t *testing.T) {
	g := NewRandWELL(1)
	v := []string{"only"}
	Shuffle(g, v)
	assert.Equal(t, []string{"only"}, v)

	// No generator calls are made for fewer than two elements.
	ref := NewRandWELL(1)
	assert.Equal(t, ref.Rand(), g.Rand())
}

func TestShuffleNMatchesShuffle(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := append([]int(nil), a...)

	Shuffle(NewXoshiro128StarStar(77), a[:6])
	ShuffleN(NewXoshiro128StarStar(77), 6, b)

	assert.Equal(t, a, b)
	assert.Equal(t, []int{6, 7, 8, 9}, b[6:], "elements past n are untouched")
}

func TestShuffleNBounds(t *testing.T) {
	g := NewXoshiro128Plus(1)
	assert.Panics(t, func() { ShuffleN(g, 4, []int{1, 2, 3}) })
	assert.Panics(t, func() { ShuffleN(g, -1, []int{1, 2, 3}) })
	assert.NotPanics(t, func() { ShuffleN(g, 0, []int{1, 2, 3}) })
}

func TestShuffleUniformity(t *testing.T) {
	// Each of the 6 permutations of three elements should show up roughly
	// equally often.
	g := NewXoroshiro128Plus(2024)
	counts := map[[3]int]int{}
	const rounds = 60000
	for i := 0; i < rounds; i++ {
		v := [3]int{0, 1, 2}
		Shuffle(g, v[:])
		counts[v]++
	}

	assert.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, rounds/6, c, rounds/60, "permutation %v", perm)
	}
}

package column

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmpInts(data []int) func(a, b int) int {
	return func(a, b int) int {
		return data[a] - data[b]
	}
}

func TestIdentityPermutation(t *testing.T) {
	assert.Equal(t, Permutation{0, 1, 2, 3}, IdentityPermutation(4))
	assert.Equal(t, Permutation{}, IdentityPermutation(0))
}

func TestPermutationIsValid(t *testing.T) {
	assert.True(t, Permutation{2, 0, 1}.IsValid(3))
	assert.False(t, Permutation{2, 0, 0}.IsValid(3))
	assert.False(t, Permutation{2, 0}.IsValid(3))
	assert.False(t, Permutation{3, 0, 1}.IsValid(3))
	assert.True(t, Permutation{}.IsValid(0))
}

func TestSortPermutationStable(t *testing.T) {
	data := []int{1, 0, 1, 0, 1}
	perm := IdentityPermutation(len(data))
	SortPermutation(perm, 0, cmpInts(data))
	assert.Equal(t, Permutation{1, 3, 0, 2, 4}, perm)

	// a limit covering all rows is a full sort
	perm = IdentityPermutation(len(data))
	SortPermutation(perm, len(data), cmpInts(data))
	assert.Equal(t, Permutation{1, 3, 0, 2, 4}, perm)
}

func TestSortPermutationPartial(t *testing.T) {
	data := []int{5, 3, 8, 1, 9}
	perm := IdentityPermutation(len(data))
	SortPermutation(perm, 3, cmpInts(data))
	// top rows in order, the rest in input order
	assert.Equal(t, Permutation{3, 1, 0, 2, 4}, perm)
}

func TestSortPermutationPartialTies(t *testing.T) {
	data := []int{2, 1, 2, 1, 2, 0}
	perm := IdentityPermutation(len(data))
	SortPermutation(perm, 4, cmpInts(data))
	assert.Equal(t, Permutation{5, 1, 3, 0, 2, 4}, perm)
}

func TestSortPermutationPartialRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		size := 1 + rnd.Intn(300)
		limit := 1 + rnd.Intn(size)
		data := make([]int, size)
		for i := range data {
			data[i] = rnd.Intn(20)
		}

		expect := IdentityPermutation(size)
		sort.SliceStable(expect, func(i, j int) bool {
			return data[expect[i]] < data[expect[j]]
		})

		perm := IdentityPermutation(size)
		SortPermutation(perm, limit, cmpInts(data))
		require.True(t, perm.IsValid(size))
		require.Equal(t, expect[:limit], perm[:limit], "size %d limit %d", size, limit)
	}
}

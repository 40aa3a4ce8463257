package collation

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollatorCompare(t *testing.T) {
	coll, err := New("de")
	require.NoError(t, err)
	assert.Equal(t, "de", coll.Locale())
	assert.Equal(t, "de", coll.String())

	assert.Less(t, coll.Compare("apple", "Banana"), 0)
	assert.Less(t, coll.Compare("Ärger", "Banana"), 0)
	assert.Equal(t, 0, coll.Compare("same", "same"))

	_, err = New("not a locale!")
	assert.Error(t, err)
}

func TestCollatorSortKeys(t *testing.T) {
	coll, err := New("sv")
	require.NoError(t, err)
	words := []string{"ö", "z", "a", "å", "ä", "o", "Z"}
	keys := coll.SortKeys(words)
	require.Equal(t, len(words), len(keys))

	idx := []int{0, 1, 2, 3, 4, 5, 6}
	sort.SliceStable(idx, func(i, j int) bool {
		return bytes.Compare(keys[idx[i]], keys[idx[j]]) < 0
	})
	for i := 1; i < len(idx); i++ {
		assert.LessOrEqual(t, coll.Compare(words[idx[i-1]], words[idx[i]]), 0)
	}
	// swedish orders å ä ö after z
	assert.Greater(t, coll.Compare("å", "z"), 0)

	cloned := coll.Clone()
	assert.Equal(t, coll.Locale(), cloned.Locale())
	assert.Equal(t, coll.Compare("ö", "o"), cloned.Compare("ö", "o"))
}

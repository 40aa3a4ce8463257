package column

import (
	"github.com/liyue201/gostl/ds/priorityqueue"
	"golang.org/x/exp/slices"

	"github.com/daviszhen/blocksort/pkg/util"
)

func IdentityPermutation(size int) Permutation {
	perm := make(Permutation, size)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// IsValid reports whether perm is a bijection over [0, size).
func (perm Permutation) IsValid(size int) bool {
	if len(perm) != size {
		return false
	}
	seen := &util.Bitmap{}
	seen.Init(size)
	for _, row := range perm {
		if row < 0 || row >= size || seen.IsSet(uint64(row)) {
			return false
		}
		seen.Set(uint64(row), true)
	}
	return true
}

// SortPermutation reorders perm in place by cmp.
//
// Without a limit (0, or >= len(perm)) it is a stable full sort.
// Otherwise the first limit positions receive the smallest entries in
// order, ties resolved by their position in perm, and the remaining
// entries follow in their original relative order.
func SortPermutation(perm Permutation, limit int, cmp func(a, b int) int) {
	if limit <= 0 || limit >= len(perm) {
		slices.SortStableFunc(perm, cmp)
		return
	}
	partialSort(perm, limit, cmp)
}

func partialSort(perm Permutation, limit int, cmp func(a, b int) int) {
	// heap entries are positions in perm
	stableCmp := func(a, b int) int {
		if res := cmp(perm[a], perm[b]); res != 0 {
			return res
		}
		return a - b
	}
	// greatest kept entry on top
	heap := priorityqueue.New[int](func(a, b int) int {
		return stableCmp(b, a)
	})
	for i := range perm {
		if heap.Size() < limit {
			heap.Push(i)
			continue
		}
		if stableCmp(i, heap.Top()) < 0 {
			heap.Pop()
			heap.Push(i)
		}
	}
	util.AssertFunc(heap.Size() == limit)

	chosen := &util.Bitmap{}
	chosen.Init(len(perm))
	res := make(Permutation, len(perm))
	for k := limit - 1; k >= 0; k-- {
		pos := heap.Pop()
		chosen.Set(uint64(pos), true)
		res[k] = perm[pos]
	}
	tail := limit
	for pos, row := range perm {
		if chosen.IsSet(uint64(pos)) {
			continue
		}
		res[tail] = row
		tail++
	}
	copy(perm, res)
}

package column

import (
	"errors"
	"fmt"

	"github.com/daviszhen/blocksort/pkg/collation"
	"github.com/daviszhen/blocksort/pkg/common"
)

var (
	ErrTypeMismatch        = errors.New("column type mismatch")
	ErrPermutationTooShort = errors.New("size of permutation is less than required")
)

// Permutation lists source rows: output row i reads row Permutation[i].
type Permutation []int

// Column is an immutable typed sequence of values.
type Column interface {
	Type() common.LType

	Len() int

	// CompareAt compares row n of this column with row m of rhs.
	// nanDirectionHint is the result for NaN against a regular value;
	// passing the sort direction keeps NaNs last in both directions.
	CompareAt(n, m int, rhs Column, nanDirectionHint int) int

	// Permutation sorts the column alone. With 0 < limit < Len only
	// the first limit entries are guaranteed to be ordered.
	Permutation(reverse bool, limit int) Permutation

	// Permute builds a new column from rows perm[0:limit]
	// (the whole permutation when limit is 0).
	Permute(perm Permutation, limit int) (Column, error)

	ValueString(i int) string
}

// CollatedColumn is implemented by string columns only.
type CollatedColumn interface {
	Column

	CompareAtWithCollation(n, m int, rhs Column, coll *collation.Collator) int

	PermutationWithCollation(coll *collation.Collator, reverse bool, limit int) Permutation
}

func typeMismatch(lhs, rhs Column) error {
	return fmt.Errorf("%w: %s(%T) vs %s(%T)", ErrTypeMismatch, lhs.Type(), lhs, rhs.Type(), rhs)
}

func directionOf(reverse bool) int {
	if reverse {
		return -1
	}
	return 1
}

// sortSelf is the generic single column permutation used by every
// concrete type without a specialised strategy.
func sortSelf(col Column, reverse bool, limit int) Permutation {
	dir := directionOf(reverse)
	perm := IdentityPermutation(col.Len())
	SortPermutation(perm, limit, func(a, b int) int {
		return dir * col.CompareAt(a, b, col, dir)
	})
	return perm
}

func permuteSlice[T any](data []T, perm Permutation, limit int) ([]T, error) {
	size := len(data)
	if limit == 0 {
		limit = size
	} else {
		limit = min(size, limit)
	}
	if len(perm) < limit {
		return nil, fmt.Errorf("%w: %d < %d", ErrPermutationTooShort, len(perm), limit)
	}
	res := make([]T, limit)
	for i := 0; i < limit; i++ {
		res[i] = data[perm[i]]
	}
	return res, nil
}

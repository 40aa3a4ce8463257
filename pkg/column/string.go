package column

import (
	"bytes"
	"strings"

	"github.com/daviszhen/blocksort/pkg/collation"
	"github.com/daviszhen/blocksort/pkg/common"
)

// String is the only column supporting locale collation.
// Without a collator values compare bytewise.
type String struct {
	Data []string
}

var _ CollatedColumn = (*String)(nil)

func NewString(data []string) *String {
	return &String{Data: data}
}

func (col *String) Type() common.LType {
	return common.VarcharType()
}

func (col *String) Len() int {
	return len(col.Data)
}

func (col *String) other(rhs Column) *String {
	other, ok := rhs.(*String)
	if !ok {
		panic(typeMismatch(col, rhs))
	}
	return other
}

func (col *String) CompareAt(n, m int, rhs Column, _ int) int {
	return strings.Compare(col.Data[n], col.other(rhs).Data[m])
}

func (col *String) CompareAtWithCollation(n, m int, rhs Column, coll *collation.Collator) int {
	return coll.Compare(col.Data[n], col.other(rhs).Data[m])
}

func (col *String) Permutation(reverse bool, limit int) Permutation {
	return sortSelf(col, reverse, limit)
}

// PermutationWithCollation computes every collation key once and sorts
// on the keys instead of re-collating both strings per comparison.
func (col *String) PermutationWithCollation(coll *collation.Collator, reverse bool, limit int) Permutation {
	dir := directionOf(reverse)
	keys := coll.SortKeys(col.Data)
	perm := IdentityPermutation(col.Len())
	SortPermutation(perm, limit, func(a, b int) int {
		return dir * bytes.Compare(keys[a], keys[b])
	})
	return perm
}

func (col *String) Permute(perm Permutation, limit int) (Column, error) {
	data, err := permuteSlice(col.Data, perm, limit)
	if err != nil {
		return nil, err
	}
	return NewString(data), nil
}

func (col *String) ValueString(i int) string {
	return col.Data[i]
}

package column

import (
	"strconv"

	"github.com/daviszhen/blocksort/pkg/common"
)

// Boolean orders false before true.
type Boolean struct {
	Data []bool
}

func NewBoolean(data []bool) *Boolean {
	return &Boolean{Data: data}
}

func (col *Boolean) Type() common.LType {
	return common.BooleanType()
}

func (col *Boolean) Len() int {
	return len(col.Data)
}

func (col *Boolean) CompareAt(n, m int, rhs Column, _ int) int {
	other, ok := rhs.(*Boolean)
	if !ok {
		panic(typeMismatch(col, rhs))
	}
	a, b := col.Data[n], other.Data[m]
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func (col *Boolean) Permutation(reverse bool, limit int) Permutation {
	return sortSelf(col, reverse, limit)
}

func (col *Boolean) Permute(perm Permutation, limit int) (Column, error) {
	data, err := permuteSlice(col.Data, perm, limit)
	if err != nil {
		return nil, err
	}
	return NewBoolean(data), nil
}

func (col *Boolean) ValueString(i int) string {
	return strconv.FormatBool(col.Data[i])
}

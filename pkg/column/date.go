package column

import (
	"github.com/daviszhen/blocksort/pkg/common"
)

type Date struct {
	Data []common.Date
}

func NewDate(data []common.Date) *Date {
	return &Date{Data: data}
}

func (col *Date) Type() common.LType {
	return common.DateType()
}

func (col *Date) Len() int {
	return len(col.Data)
}

func (col *Date) CompareAt(n, m int, rhs Column, _ int) int {
	other, ok := rhs.(*Date)
	if !ok {
		panic(typeMismatch(col, rhs))
	}
	return col.Data[n].Compare(&other.Data[m])
}

func (col *Date) Permutation(reverse bool, limit int) Permutation {
	return sortSelf(col, reverse, limit)
}

func (col *Date) Permute(perm Permutation, limit int) (Column, error) {
	data, err := permuteSlice(col.Data, perm, limit)
	if err != nil {
		return nil, err
	}
	return NewDate(data), nil
}

func (col *Date) ValueString(i int) string {
	return col.Data[i].String()
}

package column

import (
	"github.com/govalues/decimal"

	"github.com/daviszhen/blocksort/pkg/common"
)

type Decimal struct {
	typ  common.LType
	Data []decimal.Decimal
}

func NewDecimal(typ common.LType, data []decimal.Decimal) *Decimal {
	return &Decimal{
		typ:  typ,
		Data: data,
	}
}

func (col *Decimal) Type() common.LType {
	return col.typ
}

func (col *Decimal) Len() int {
	return len(col.Data)
}

func (col *Decimal) CompareAt(n, m int, rhs Column, _ int) int {
	other, ok := rhs.(*Decimal)
	if !ok {
		panic(typeMismatch(col, rhs))
	}
	return col.Data[n].Cmp(other.Data[m])
}

func (col *Decimal) Permutation(reverse bool, limit int) Permutation {
	return sortSelf(col, reverse, limit)
}

func (col *Decimal) Permute(perm Permutation, limit int) (Column, error) {
	data, err := permuteSlice(col.Data, perm, limit)
	if err != nil {
		return nil, err
	}
	return NewDecimal(col.typ, data), nil
}

func (col *Decimal) ValueString(i int) string {
	return col.Data[i].String()
}

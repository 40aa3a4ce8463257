package column

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/daviszhen/blocksort/pkg/common"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is a fixed width column of integers or floats.
type Numeric[T Number] struct {
	typ  common.LType
	Data []T
}

func NewNumeric[T Number](typ common.LType, data []T) *Numeric[T] {
	return &Numeric[T]{
		typ:  typ,
		Data: data,
	}
}

func NewInt8(data []int8) *Numeric[int8] {
	return NewNumeric(common.TinyintType(), data)
}

func NewInt16(data []int16) *Numeric[int16] {
	return NewNumeric(common.SmallintType(), data)
}

func NewInt32(data []int32) *Numeric[int32] {
	return NewNumeric(common.IntegerType(), data)
}

func NewInt64(data []int64) *Numeric[int64] {
	return NewNumeric(common.BigintType(), data)
}

func NewUint32(data []uint32) *Numeric[uint32] {
	return NewNumeric(common.UintegerType(), data)
}

func NewUint64(data []uint64) *Numeric[uint64] {
	return NewNumeric(common.UbigintType(), data)
}

func NewFloat32(data []float32) *Numeric[float32] {
	return NewNumeric(common.FloatType(), data)
}

func NewFloat64(data []float64) *Numeric[float64] {
	return NewNumeric(common.DoubleType(), data)
}

func (col *Numeric[T]) Type() common.LType {
	return col.typ
}

func (col *Numeric[T]) Len() int {
	return len(col.Data)
}

func (col *Numeric[T]) CompareAt(n, m int, rhs Column, nanDirectionHint int) int {
	other, ok := rhs.(*Numeric[T])
	if !ok {
		panic(typeMismatch(col, rhs))
	}
	a, b := col.Data[n], other.Data[m]
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return nanDirectionHint
	case bNaN:
		return -nanDirectionHint
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (col *Numeric[T]) Permutation(reverse bool, limit int) Permutation {
	return sortSelf(col, reverse, limit)
}

func (col *Numeric[T]) Permute(perm Permutation, limit int) (Column, error) {
	data, err := permuteSlice(col.Data, perm, limit)
	if err != nil {
		return nil, err
	}
	return NewNumeric(col.typ, data), nil
}

func (col *Numeric[T]) ValueString(i int) string {
	switch v := any(col.Data[i]).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

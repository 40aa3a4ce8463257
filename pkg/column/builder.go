package column

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"

	"github.com/daviszhen/blocksort/pkg/common"
)

// Builder accumulates values of one logical type and produces a Column.
type Builder interface {
	// AppendString parses a textual field, as read from csv.
	AppendString(field string) error
	// AppendValue converts a value decoded from parquet.
	AppendValue(val any) error
	Len() int
	Finish() Column
}

func NewBuilder(typ common.LType) (Builder, error) {
	switch typ.Id {
	case common.LTID_BOOLEAN:
		return &boolBuilder{}, nil
	case common.LTID_TINYINT:
		return &intBuilder[int8]{typ: typ, bits: 8}, nil
	case common.LTID_SMALLINT:
		return &intBuilder[int16]{typ: typ, bits: 16}, nil
	case common.LTID_INTEGER:
		return &intBuilder[int32]{typ: typ, bits: 32}, nil
	case common.LTID_BIGINT:
		return &intBuilder[int64]{typ: typ, bits: 64}, nil
	case common.LTID_UINTEGER:
		return &uintBuilder[uint32]{typ: typ, bits: 32}, nil
	case common.LTID_UBIGINT:
		return &uintBuilder[uint64]{typ: typ, bits: 64}, nil
	case common.LTID_FLOAT:
		return &floatBuilder[float32]{typ: typ, bits: 32}, nil
	case common.LTID_DOUBLE:
		return &floatBuilder[float64]{typ: typ, bits: 64}, nil
	case common.LTID_VARCHAR:
		return &stringBuilder{}, nil
	case common.LTID_DECIMAL:
		return &decimalBuilder{typ: typ}, nil
	case common.LTID_DATE:
		return &dateBuilder{}, nil
	default:
		return nil, fmt.Errorf("no column builder for type %v", typ)
	}
}

func unexpectedValue(val any, typ common.LType) error {
	return fmt.Errorf("%w: value %v(%T) for %v", ErrTypeMismatch, val, val, typ)
}

type intBuilder[T int8 | int16 | int32 | int64] struct {
	typ  common.LType
	bits int
	data []T
}

func (b *intBuilder[T]) AppendString(field string) error {
	v, err := strconv.ParseInt(field, 10, b.bits)
	if err != nil {
		return err
	}
	b.data = append(b.data, T(v))
	return nil
}

func (b *intBuilder[T]) AppendValue(val any) error {
	switch v := val.(type) {
	case int32:
		b.data = append(b.data, T(v))
	case int64:
		b.data = append(b.data, T(v))
	default:
		return unexpectedValue(val, b.typ)
	}
	return nil
}

func (b *intBuilder[T]) Len() int {
	return len(b.data)
}

func (b *intBuilder[T]) Finish() Column {
	return NewNumeric(b.typ, b.data)
}

type uintBuilder[T uint32 | uint64] struct {
	typ  common.LType
	bits int
	data []T
}

func (b *uintBuilder[T]) AppendString(field string) error {
	v, err := strconv.ParseUint(field, 10, b.bits)
	if err != nil {
		return err
	}
	b.data = append(b.data, T(v))
	return nil
}

func (b *uintBuilder[T]) AppendValue(val any) error {
	switch v := val.(type) {
	case int32:
		b.data = append(b.data, T(uint32(v)))
	case int64:
		b.data = append(b.data, T(uint64(v)))
	default:
		return unexpectedValue(val, b.typ)
	}
	return nil
}

func (b *uintBuilder[T]) Len() int {
	return len(b.data)
}

func (b *uintBuilder[T]) Finish() Column {
	return NewNumeric(b.typ, b.data)
}

type floatBuilder[T float32 | float64] struct {
	typ  common.LType
	bits int
	data []T
}

func (b *floatBuilder[T]) AppendString(field string) error {
	v, err := strconv.ParseFloat(field, b.bits)
	if err != nil {
		return err
	}
	b.data = append(b.data, T(v))
	return nil
}

func (b *floatBuilder[T]) AppendValue(val any) error {
	switch v := val.(type) {
	case float32:
		b.data = append(b.data, T(v))
	case float64:
		b.data = append(b.data, T(v))
	default:
		return unexpectedValue(val, b.typ)
	}
	return nil
}

func (b *floatBuilder[T]) Len() int {
	return len(b.data)
}

func (b *floatBuilder[T]) Finish() Column {
	return NewNumeric(b.typ, b.data)
}

type boolBuilder struct {
	data []bool
}

func (b *boolBuilder) AppendString(field string) error {
	v, err := strconv.ParseBool(field)
	if err != nil {
		return err
	}
	b.data = append(b.data, v)
	return nil
}

func (b *boolBuilder) AppendValue(val any) error {
	v, ok := val.(bool)
	if !ok {
		return unexpectedValue(val, common.BooleanType())
	}
	b.data = append(b.data, v)
	return nil
}

func (b *boolBuilder) Len() int {
	return len(b.data)
}

func (b *boolBuilder) Finish() Column {
	return NewBoolean(b.data)
}

type stringBuilder struct {
	data []string
}

func (b *stringBuilder) AppendString(field string) error {
	b.data = append(b.data, field)
	return nil
}

func (b *stringBuilder) AppendValue(val any) error {
	switch v := val.(type) {
	case string:
		b.data = append(b.data, v)
	case []byte:
		b.data = append(b.data, string(v))
	default:
		return unexpectedValue(val, common.VarcharType())
	}
	return nil
}

func (b *stringBuilder) Len() int {
	return len(b.data)
}

func (b *stringBuilder) Finish() Column {
	return NewString(b.data)
}

type decimalBuilder struct {
	typ  common.LType
	data []decimal.Decimal
}

func (b *decimalBuilder) AppendString(field string) error {
	d, err := decimal.Parse(field)
	if err != nil {
		return err
	}
	b.data = append(b.data, d)
	return nil
}

// AppendValue expects the unscaled integer encoding used by parquet.
func (b *decimalBuilder) AppendValue(val any) error {
	var unscaled int64
	switch v := val.(type) {
	case int32:
		unscaled = int64(v)
	case int64:
		unscaled = v
	default:
		return unexpectedValue(val, b.typ)
	}
	d, err := decimal.New(unscaled, b.typ.Scale)
	if err != nil {
		return err
	}
	b.data = append(b.data, d)
	return nil
}

func (b *decimalBuilder) Len() int {
	return len(b.data)
}

func (b *decimalBuilder) Finish() Column {
	return NewDecimal(b.typ, b.data)
}

type dateBuilder struct {
	data []common.Date
}

func (b *dateBuilder) AppendString(field string) error {
	d, err := common.ParseDate(field)
	if err != nil {
		return err
	}
	b.data = append(b.data, d)
	return nil
}

// AppendValue expects days since the unix epoch.
func (b *dateBuilder) AppendValue(val any) error {
	v, ok := val.(int32)
	if !ok {
		return unexpectedValue(val, common.DateType())
	}
	b.data = append(b.data, common.DateFromDays(v))
	return nil
}

func (b *dateBuilder) Len() int {
	return len(b.data)
}

func (b *dateBuilder) Finish() Column {
	return NewDate(b.data)
}

package common

import (
	"fmt"
	"strconv"
	"strings"
)

type LType struct {
	Id    LTypeId
	Width int
	Scale int
}

func MakeLType(id LTypeId) LType {
	return LType{Id: id}
}

func DecimalType(width, scale int) LType {
	ret := MakeLType(LTID_DECIMAL)
	ret.Width = width
	ret.Scale = scale
	return ret
}

func BooleanType() LType {
	return MakeLType(LTID_BOOLEAN)
}

func TinyintType() LType {
	return MakeLType(LTID_TINYINT)
}

func SmallintType() LType {
	return MakeLType(LTID_SMALLINT)
}

func IntegerType() LType {
	return MakeLType(LTID_INTEGER)
}

func BigintType() LType {
	return MakeLType(LTID_BIGINT)
}

func UintegerType() LType {
	return MakeLType(LTID_UINTEGER)
}

func UbigintType() LType {
	return MakeLType(LTID_UBIGINT)
}

func FloatType() LType {
	return MakeLType(LTID_FLOAT)
}

func DoubleType() LType {
	return MakeLType(LTID_DOUBLE)
}

func VarcharType() LType {
	return MakeLType(LTID_VARCHAR)
}

func DateType() LType {
	return MakeLType(LTID_DATE)
}

func (lt LType) Equal(o LType) bool {
	return lt.Id == o.Id && lt.Width == o.Width && lt.Scale == o.Scale
}

func (lt LType) IsNumeric() bool {
	switch lt.Id {
	case LTID_TINYINT, LTID_SMALLINT, LTID_INTEGER, LTID_BIGINT,
		LTID_UINTEGER, LTID_UBIGINT, LTID_FLOAT, LTID_DOUBLE, LTID_DECIMAL:
		return true
	default:
		return false
	}
}

func (lt LType) String() string {
	if lt.Id == LTID_DECIMAL {
		return fmt.Sprintf("%v(%d,%d)", lt.Id, lt.Width, lt.Scale)
	}
	return lt.Id.String()
}

var nameToLTypeId = map[string]LTypeId{
	"bool":     LTID_BOOLEAN,
	"boolean":  LTID_BOOLEAN,
	"tinyint":  LTID_TINYINT,
	"smallint": LTID_SMALLINT,
	"int":      LTID_INTEGER,
	"integer":  LTID_INTEGER,
	"bigint":   LTID_BIGINT,
	"uinteger": LTID_UINTEGER,
	"ubigint":  LTID_UBIGINT,
	"float":    LTID_FLOAT,
	"double":   LTID_DOUBLE,
	"varchar":  LTID_VARCHAR,
	"text":     LTID_VARCHAR,
	"string":   LTID_VARCHAR,
	"date":     LTID_DATE,
}

// ParseLType accepts type names such as "bigint", "varchar" or "decimal(15,2)".
func ParseLType(name string) (LType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "decimal") {
		args := strings.TrimPrefix(name, "decimal")
		if args == "" {
			return DecimalType(18, 3), nil
		}
		if !strings.HasPrefix(args, "(") || !strings.HasSuffix(args, ")") {
			return LType{}, fmt.Errorf("invalid decimal type %q", name)
		}
		parts := strings.Split(args[1:len(args)-1], ",")
		if len(parts) != 2 {
			return LType{}, fmt.Errorf("invalid decimal type %q", name)
		}
		width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return LType{}, fmt.Errorf("invalid decimal width in %q: %w", name, err)
		}
		scale, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return LType{}, fmt.Errorf("invalid decimal scale in %q: %w", name, err)
		}
		if scale < 0 || scale > width {
			return LType{}, fmt.Errorf("invalid decimal scale in %q", name)
		}
		return DecimalType(width, scale), nil
	}
	if id, has := nameToLTypeId[name]; has {
		return MakeLType(id), nil
	}
	return LType{}, fmt.Errorf("unsupported type %q", name)
}

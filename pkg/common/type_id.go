package common

import "fmt"

type LTypeId int

const (
	LTID_INVALID  LTypeId = 0
	LTID_BOOLEAN  LTypeId = 10
	LTID_TINYINT  LTypeId = 11
	LTID_SMALLINT LTypeId = 12
	LTID_INTEGER  LTypeId = 13
	LTID_BIGINT   LTypeId = 14
	LTID_DATE     LTypeId = 15
	LTID_DECIMAL  LTypeId = 21
	LTID_FLOAT    LTypeId = 22
	LTID_DOUBLE   LTypeId = 23
	LTID_VARCHAR  LTypeId = 25
	LTID_UINTEGER LTypeId = 30
	LTID_UBIGINT  LTypeId = 31
)

var lTypeIdToStr = map[LTypeId]string{
	LTID_INVALID:  "invalid",
	LTID_BOOLEAN:  "boolean",
	LTID_TINYINT:  "tinyint",
	LTID_SMALLINT: "smallint",
	LTID_INTEGER:  "integer",
	LTID_BIGINT:   "bigint",
	LTID_DATE:     "date",
	LTID_DECIMAL:  "decimal",
	LTID_FLOAT:    "float",
	LTID_DOUBLE:   "double",
	LTID_VARCHAR:  "varchar",
	LTID_UINTEGER: "uinteger",
	LTID_UBIGINT:  "ubigint",
}

func (id LTypeId) String() string {
	if s, has := lTypeIdToStr[id]; has {
		return s
	}
	panic(fmt.Sprintf("usp logical type id %d", id))
}

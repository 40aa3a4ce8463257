package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLType(t *testing.T) {
	cases := map[string]LType{
		"bigint":        BigintType(),
		" INT ":         IntegerType(),
		"text":          VarcharType(),
		"date":          DateType(),
		"double":        DoubleType(),
		"decimal":       DecimalType(18, 3),
		"decimal(15,2)": DecimalType(15, 2),
		"Decimal(9, 0)": DecimalType(9, 0),
	}
	for name, expect := range cases {
		typ, err := ParseLType(name)
		require.NoError(t, err, name)
		assert.True(t, expect.Equal(typ), name)
	}

	for _, name := range []string{"blob", "decimal(2,3)", "decimal(x,1)", "decimal(1)", "decimal[1,2]"} {
		_, err := ParseLType(name)
		assert.Error(t, err, name)
	}
	assert.Equal(t, "decimal(15,2)", DecimalType(15, 2).String())
	assert.True(t, FloatType().IsNumeric())
	assert.False(t, VarcharType().IsNumeric())
}

func TestDate(t *testing.T) {
	d, err := ParseDate("1995-03-15")
	require.NoError(t, err)
	assert.Equal(t, "1995-03-15", d.String())

	_, err = ParseDate("1995/03/15")
	assert.Error(t, err)

	epoch := DateFromDays(0)
	assert.Equal(t, "1970-01-01", epoch.String())
	next := DateFromDays(366)
	assert.Equal(t, "1971-01-02", next.String())
	assert.True(t, epoch.Less(&next))
	assert.Equal(t, 1, next.Compare(&epoch))
	assert.True(t, epoch.Equal(&epoch))
	assert.Equal(t, int64(366*24*3600), next.ToDate().Unix())
}

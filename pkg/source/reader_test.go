package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pqLocal "github.com/xitongsys/parquet-go-source/local"
	pqWriter "github.com/xitongsys/parquet-go/writer"

	"github.com/daviszhen/blocksort/pkg/block"
	"github.com/daviszhen/blocksort/pkg/column"
	"github.com/daviszhen/blocksort/pkg/util"
)

const testSchema = `
[[columns]]
name = "id"
type = "bigint"

[[columns]]
name = "name"
type = "varchar"

[[columns]]
name = "price"
type = "decimal(15,2)"
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readAll(t *testing.T, reader *Reader) []*block.Block {
	var ret []*block.Block
	for {
		blk, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		ret = append(ret, blk)
	}
	return ret
}

func TestParseSchema(t *testing.T) {
	sch, err := ParseSchema(testSchema)
	require.NoError(t, err)
	require.Equal(t, 3, len(sch.Types()))
	assert.Equal(t, "bigint", sch.Types()[0].String())
	assert.Equal(t, "decimal(15,2)", sch.Types()[2].String())

	path := writeFile(t, "schema.toml", testSchema)
	sch, err = LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "name", sch.Columns[1].Name)

	_, err = ParseSchema("")
	assert.Error(t, err)
	_, err = ParseSchema("[[columns]]\nname = \"a\"\ntype = \"blob\"\n")
	assert.Error(t, err)
	_, err = ParseSchema("[[columns]]\nname = \"a\"\ntype = \"int\"\n[[columns]]\nname = \"a\"\ntype = \"int\"\n")
	assert.Error(t, err)
}

func TestCsvReader(t *testing.T) {
	sch, err := ParseSchema(testSchema)
	require.NoError(t, err)
	path := writeFile(t, "data.csv", "id|name|price\n3|c|1.50\n1|a|20.00\n2|b|-3.25\n")

	cfg := &util.InputOptions{
		Path:      path,
		Format:    string(FormatCsv),
		Delimiter: "|",
		HasHeader: true,
	}
	reader, err := NewReader(cfg, sch, 2)
	require.NoError(t, err)
	defer reader.Close()

	blocks := readAll(t, reader)
	require.Equal(t, 2, len(blocks))
	assert.Equal(t, 2, blocks[0].Rows())
	assert.Equal(t, 1, blocks[1].Rows())
	assert.Equal(t, []string{"id", "name", "price"}, blocks[0].Names())

	col, err := blocks[0].GetByName("id")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, col.Column.(*column.Numeric[int64]).Data)
	col, err = blocks[1].GetByName("price")
	require.NoError(t, err)
	assert.Equal(t, "-3.25", col.Column.ValueString(0))
}

func TestCsvReaderErrors(t *testing.T) {
	sch, err := ParseSchema(testSchema)
	require.NoError(t, err)

	path := writeFile(t, "short.csv", "1,a\n")
	reader, err := NewReader(&util.InputOptions{Path: path, Format: "csv"}, sch, 0)
	require.NoError(t, err)
	_, err = reader.Next()
	assert.Error(t, err)
	require.NoError(t, reader.Close())

	path = writeFile(t, "bad.csv", "x,a,1.00\n")
	reader, err = NewReader(&util.InputOptions{Path: path, Format: "csv"}, sch, 0)
	require.NoError(t, err)
	_, err = reader.Next()
	assert.Error(t, err)
	require.NoError(t, reader.Close())

	_, err = NewReader(&util.InputOptions{Path: path, Format: "json"}, sch, 0)
	assert.Error(t, err)
	_, err = NewReader(&util.InputOptions{Path: path + ".missing", Format: "csv"}, sch, 0)
	assert.Error(t, err)
}

type parquetRow struct {
	Id   int64  `parquet:"name=id, type=INT64"`
	Name string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func TestParquetReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.parquet")
	fw, err := pqLocal.NewLocalFileWriter(path)
	require.NoError(t, err)
	pw, err := pqWriter.NewParquetWriter(fw, new(parquetRow), 1)
	require.NoError(t, err)
	rows := []parquetRow{{3, "c"}, {1, "a"}, {2, "b"}}
	for _, row := range rows {
		require.NoError(t, pw.Write(row))
	}
	require.NoError(t, pw.WriteStop())
	require.NoError(t, fw.Close())

	sch, err := ParseSchema(`
[[columns]]
name = "id"
type = "bigint"

[[columns]]
name = "name"
type = "varchar"
`)
	require.NoError(t, err)
	reader, err := NewReader(&util.InputOptions{Path: path, Format: string(FormatParquet)}, sch, 2)
	require.NoError(t, err)
	defer reader.Close()

	blocks := readAll(t, reader)
	require.Equal(t, 2, len(blocks))
	col, err := blocks[0].GetByName("id")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, col.Column.(*column.Numeric[int64]).Data)
	col, err = blocks[1].GetByName("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, col.Column.(*column.String).Data)
}

package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	pqLocal "github.com/xitongsys/parquet-go-source/local"
	pqReader "github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"

	"github.com/daviszhen/blocksort/pkg/block"
	"github.com/daviszhen/blocksort/pkg/column"
	"github.com/daviszhen/blocksort/pkg/util"
)

type Format string

const (
	FormatCsv     Format = "csv"
	FormatParquet Format = "parquet"
)

// Reader yields the rows of a file as blocks of at most batchSize rows.
type Reader struct {
	schema    *Schema
	format    Format
	batchSize int

	dataFile *os.File
	csv      *csv.Reader

	pqFile   source.ParquetFile
	pqReader *pqReader.ParquetReader
	pqRows   int64
}

func NewReader(cfg *util.InputOptions, schema *Schema, batchSize int) (*Reader, error) {
	if batchSize <= 0 {
		batchSize = util.DefaultVectorSize
	}
	reader := &Reader{
		schema:    schema,
		format:    Format(cfg.Format),
		batchSize: batchSize,
	}
	var err error
	switch reader.format {
	case FormatParquet:
		reader.pqFile, err = pqLocal.NewLocalFileReader(cfg.Path)
		if err != nil {
			return nil, err
		}
		reader.pqReader, err = pqReader.NewParquetColumnReader(reader.pqFile, 1)
		if err != nil {
			_ = reader.pqFile.Close()
			return nil, err
		}
		reader.pqRows = reader.pqReader.GetNumRows()
	case FormatCsv:
		reader.dataFile, err = os.OpenFile(cfg.Path, os.O_RDONLY, 0755)
		if err != nil {
			return nil, err
		}
		comma := ','
		if len(cfg.Delimiter) != 0 {
			comma = rune(cfg.Delimiter[0])
		}
		reader.csv = csv.NewReader(reader.dataFile)
		reader.csv.Comma = comma
		reader.csv.FieldsPerRecord = -1
		if cfg.HasHeader {
			_, err = reader.csv.Read()
			if err != nil && !errors.Is(err, io.EOF) {
				_ = reader.dataFile.Close()
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", cfg.Format)
	}
	return reader, nil
}

// Next returns io.EOF once the input is exhausted.
func (reader *Reader) Next() (*block.Block, error) {
	builders := make([]column.Builder, len(reader.schema.Columns))
	for i, typ := range reader.schema.Types() {
		var err error
		builders[i], err = column.NewBuilder(typ)
		if err != nil {
			return nil, err
		}
	}

	var (
		rowCnt int
		err    error
	)
	switch reader.format {
	case FormatParquet:
		rowCnt, err = reader.readParquet(builders)
	case FormatCsv:
		rowCnt, err = reader.readCsv(builders)
	}
	if err != nil {
		return nil, err
	}
	if rowCnt == 0 {
		return nil, io.EOF
	}

	blk := &block.Block{}
	for i, def := range reader.schema.Columns {
		err = blk.Insert(def.Name, builders[i].Finish())
		if err != nil {
			return nil, err
		}
	}
	return blk, nil
}

func (reader *Reader) readCsv(builders []column.Builder) (int, error) {
	rowCnt := 0
	for i := 0; i < reader.batchSize; i++ {
		line, err := reader.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if len(line) < len(builders) {
			return 0, fmt.Errorf("line %d has %d fields, schema has %d columns",
				rowCnt+1, len(line), len(builders))
		}
		for j, builder := range builders {
			err = builder.AppendString(line[j])
			if err != nil {
				return 0, fmt.Errorf("column %s: %w", reader.schema.Columns[j].Name, err)
			}
		}
		rowCnt++
	}
	return rowCnt, nil
}

func (reader *Reader) readParquet(builders []column.Builder) (int, error) {
	if reader.pqRows <= 0 {
		return 0, nil
	}
	maxCnt := min(int64(reader.batchSize), reader.pqRows)
	rowCnt := -1
	for j, builder := range builders {
		values, _, _, err := reader.pqReader.ReadColumnByIndex(int64(j), maxCnt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, nil
			}
			return 0, err
		}
		if rowCnt < 0 {
			rowCnt = len(values)
		} else if len(values) != rowCnt {
			return 0, fmt.Errorf("column %d has different count of values %d with previous columns %d",
				j, len(values), rowCnt)
		}
		for _, val := range values {
			err = builder.AppendValue(val)
			if err != nil {
				return 0, fmt.Errorf("column %s: %w", reader.schema.Columns[j].Name, err)
			}
		}
	}
	reader.pqRows -= int64(rowCnt)
	return rowCnt, nil
}

func (reader *Reader) Close() error {
	switch reader.format {
	case FormatCsv:
		reader.csv = nil
		return reader.dataFile.Close()
	case FormatParquet:
		reader.pqReader.ReadStop()
		return reader.pqFile.Close()
	}
	return nil
}

package block

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/huandu/go-clone"
	"github.com/tidwall/btree"
	"github.com/xlab/treeprint"

	"github.com/daviszhen/blocksort/pkg/column"
)

var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrRowCountMismatch = errors.New("row count mismatch")
)

type ColumnWithName struct {
	Name   string
	Column column.Column
}

// Block is an ordered set of named columns of the same length.
type Block struct {
	data  []*ColumnWithName
	index btree.Map[string, int]
}

func NewBlock(cols ...*ColumnWithName) (*Block, error) {
	blk := &Block{}
	for _, col := range cols {
		err := blk.Insert(col.Name, col.Column)
		if err != nil {
			return nil, err
		}
	}
	return blk, nil
}

// Insert appends a column. Unnamed columns are reachable by position only.
func (blk *Block) Insert(name string, col column.Column) error {
	if name != "" {
		if _, has := blk.index.Get(name); has {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}
	}
	if len(blk.data) != 0 && blk.Rows() != col.Len() {
		return fmt.Errorf("%w: column %q has %d rows, block has %d",
			ErrRowCountMismatch, name, col.Len(), blk.Rows())
	}
	if name != "" {
		blk.index.Set(name, len(blk.data))
	}
	blk.data = append(blk.data, &ColumnWithName{Name: name, Column: col})
	return nil
}

func (blk *Block) GetByName(name string) (*ColumnWithName, error) {
	pos, has := blk.index.Get(name)
	if !has {
		return nil, fmt.Errorf("%w: no column with name %q, there are columns: %s",
			ErrColumnNotFound, name, strings.Join(blk.Names(), ", "))
	}
	return blk.data[pos], nil
}

func (blk *Block) GetByPosition(pos int) (*ColumnWithName, error) {
	if pos < 0 || pos >= len(blk.data) {
		return nil, fmt.Errorf("%w: position %d is out of bound, there are %d columns",
			ErrColumnNotFound, pos, len(blk.data))
	}
	return blk.data[pos], nil
}

func (blk *Block) PositionByName(name string) (int, bool) {
	return blk.index.Get(name)
}

func (blk *Block) Has(name string) bool {
	_, has := blk.index.Get(name)
	return has
}

func (blk *Block) Columns() int {
	if blk == nil {
		return 0
	}
	return len(blk.data)
}

func (blk *Block) Rows() int {
	if blk.Columns() == 0 {
		return 0
	}
	return blk.data[0].Column.Len()
}

// Empty is true for a block without columns or without rows.
func (blk *Block) Empty() bool {
	return blk.Columns() == 0 || blk.Rows() == 0
}

func (blk *Block) Names() []string {
	names := make([]string, len(blk.data))
	for i, col := range blk.data {
		names[i] = col.Name
	}
	return names
}

// SortedNames lists the named columns alphabetically.
func (blk *Block) SortedNames() []string {
	return blk.index.Keys()
}

// Replace swaps the column at pos. The new column may be shorter; callers
// replace every column so that row counts agree again.
func (blk *Block) Replace(pos int, col column.Column) {
	blk.data[pos].Column = col
}

// Clone deep copies the block, column data included.
func (blk *Block) Clone() *Block {
	ret := &Block{
		data: make([]*ColumnWithName, len(blk.data)),
	}
	for i, col := range blk.data {
		ret.data[i] = clone.Clone(col).(*ColumnWithName)
		if col.Name != "" {
			ret.index.Set(col.Name, i)
		}
	}
	return ret
}

func (blk *Block) Print(tree treeprint.Tree) {
	tree = tree.AddBranch(fmt.Sprintf("block: %d columns, %d rows", blk.Columns(), blk.Rows()))
	for i, col := range blk.data {
		tree.AddNode(fmt.Sprintf("#%d %s %v", i, col.Name, col.Column.Type()))
	}
}

// Dump writes rows tab separated, like the result files of the engine.
func (blk *Block) Dump(w io.Writer) error {
	colCnt := blk.Columns()
	for i := 0; i < blk.Rows(); i++ {
		for j := 0; j < colCnt; j++ {
			_, err := io.WriteString(w, blk.data[j].Column.ValueString(i))
			if err != nil {
				return err
			}
			if j == colCnt-1 {
				continue
			}
			_, err = io.WriteString(w, "\t")
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\n")
		if err != nil {
			return err
		}
	}
	return nil
}

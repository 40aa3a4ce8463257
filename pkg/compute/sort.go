package compute

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/daviszhen/blocksort/pkg/block"
	"github.com/daviszhen/blocksort/pkg/column"
	"github.com/daviszhen/blocksort/pkg/util"
)

var (
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidLimit     = errors.New("invalid sort limit")
)

const faultBeforeColumnSwap = "return_err_before_column_swap"

// SortBlock orders the rows of blk by desc and keeps only the first limit
// rows when limit is positive. A limit of 0, or one not smaller than the
// row count, sorts all rows. Equal rows keep their relative order.
//
// Every key is resolved before the block is touched, and the columns are
// only swapped once all of them have been permuted: on error the block
// is unchanged.
func SortBlock(blk *block.Block, desc SortDescription, limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	if blk.Empty() {
		return nil
	}
	perm, err := SortPermutation(blk, desc, limit)
	if err != nil {
		return err
	}
	if limit >= blk.Rows() {
		limit = 0
	}
	return applyPermutation(blk, perm, limit)
}

// SortPermutation computes the permutation SortBlock would apply,
// without modifying blk.
func SortPermutation(blk *block.Block, desc SortDescription, limit int) (perm column.Permutation, err error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	if blk.Empty() {
		return column.IdentityPermutation(blk.Rows()), nil
	}
	columns, withCollation, err := resolveSortColumns(blk, desc)
	if err != nil {
		return nil, err
	}

	rows := blk.Rows()
	if limit >= rows {
		limit = 0
	}

	// comparators report type violations by panicking
	defer func() {
		if r := recover(); r != nil {
			perm = nil
			err = util.ConvertPanicError(r)
		}
	}()

	if len(columns) == 1 {
		util.Debug("sort block by single column",
			zap.Int("rows", rows),
			zap.Int("limit", limit),
			zap.Bool("collation", withCollation))
		return columns[0].permutation(limit), nil
	}

	util.Debug("sort block by columns",
		zap.Int("rows", rows),
		zap.Int("keys", len(columns)),
		zap.Int("limit", limit),
		zap.Bool("collation", withCollation))
	perm = column.IdentityPermutation(rows)
	cmp := newRowComparator(columns, withCollation)
	column.SortPermutation(perm, limit, cmp.compare)
	return perm, nil
}

// IsAlreadySorted reports whether the rows of blk already follow desc.
func IsAlreadySorted(blk *block.Block, desc SortDescription) (sorted bool, err error) {
	if blk.Empty() {
		return true, nil
	}
	columns, withCollation, err := resolveSortColumns(blk, desc)
	if err != nil {
		return false, err
	}
	defer func() {
		if r := recover(); r != nil {
			sorted = false
			err = util.ConvertPanicError(r)
		}
	}()
	cmp := newRowComparator(columns, withCollation)
	for i := 1; i < blk.Rows(); i++ {
		if cmp.less(i, i-1) {
			return false, nil
		}
	}
	return true, nil
}

func resolveSortColumns(blk *block.Block, desc SortDescription) ([]sortColumn, bool, error) {
	withCollation := false
	columns := make([]sortColumn, 0, len(desc))
	for i := range desc {
		key := &desc[i]
		if key.Direction != DirectionAsc && key.Direction != DirectionDesc {
			return nil, false, fmt.Errorf("%w: %d for key %s", ErrInvalidDirection, key.Direction, key)
		}
		var (
			col *block.ColumnWithName
			err error
		)
		if key.ColumnName != "" {
			col, err = blk.GetByName(key.ColumnName)
		} else {
			col, err = blk.GetByPosition(key.ColumnNumber)
		}
		if err != nil {
			return nil, false, err
		}
		sc := sortColumn{
			col:       col.Column,
			direction: key.Direction,
		}
		if strCol, ok := needCollation(col.Column, key); ok {
			sc.collated = strCol
			sc.collator = key.Collator
			withCollation = true
		}
		columns = append(columns, sc)
	}
	return columns, withCollation, nil
}

func applyPermutation(blk *block.Block, perm column.Permutation, limit int) error {
	cnt := blk.Columns()
	permuted := make([]column.Column, cnt)
	for i := 0; i < cnt; i++ {
		col, err := blk.GetByPosition(i)
		if err != nil {
			return err
		}
		permuted[i], err = col.Column.Permute(perm, limit)
		if err != nil {
			return fmt.Errorf("permute column %d %q: %w", i, col.Name, err)
		}
	}
	if err := util.Run(util.FAULTS_SCOPE_SORT, faultBeforeColumnSwap); err != nil {
		return err
	}
	for i, col := range permuted {
		blk.Replace(i, col)
	}
	return nil
}

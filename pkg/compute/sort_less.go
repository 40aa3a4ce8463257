package compute

import (
	"github.com/daviszhen/blocksort/pkg/collation"
	"github.com/daviszhen/blocksort/pkg/column"
)

type sortColumn struct {
	col       column.Column
	direction int
	// set only when the key is collated and the column supports it
	collated column.CollatedColumn
	collator *collation.Collator
}

// needCollation is the single gate to the collation capability of a column.
func needCollation(col column.Column, desc *SortColumnDescription) (column.CollatedColumn, bool) {
	if desc.Collator == nil {
		return nil, false
	}
	strCol, ok := col.(column.CollatedColumn)
	return strCol, ok
}

// permutation is the single key path: the column sorts itself.
func (sc *sortColumn) permutation(limit int) column.Permutation {
	reverse := sc.direction == DirectionDesc
	if sc.collated != nil {
		return sc.collated.PermutationWithCollation(sc.collator, reverse, limit)
	}
	return sc.col.Permutation(reverse, limit)
}

// sortLess compares rows lexicographically over all keys.
type sortLess struct {
	columns []sortColumn
}

func (less *sortLess) compare(a, b int) int {
	for i := range less.columns {
		sc := &less.columns[i]
		res := sc.direction * sc.col.CompareAt(a, b, sc.col, sc.direction)
		if res != 0 {
			return res
		}
	}
	return 0
}

func (less *sortLess) less(a, b int) bool {
	return less.compare(a, b) < 0
}

type sortLessWithCollation struct {
	columns []sortColumn
}

func (less *sortLessWithCollation) compare(a, b int) int {
	for i := range less.columns {
		sc := &less.columns[i]
		var res int
		if sc.collated != nil {
			res = sc.collated.CompareAtWithCollation(a, b, sc.col, sc.collator)
		} else {
			res = sc.col.CompareAt(a, b, sc.col, sc.direction)
		}
		res *= sc.direction
		if res != 0 {
			return res
		}
	}
	return 0
}

func (less *sortLessWithCollation) less(a, b int) bool {
	return less.compare(a, b) < 0
}

type rowComparator interface {
	compare(a, b int) int
	less(a, b int) bool
}

func newRowComparator(columns []sortColumn, withCollation bool) rowComparator {
	if withCollation {
		return &sortLessWithCollation{columns: columns}
	}
	return &sortLess{columns: columns}
}

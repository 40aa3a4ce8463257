package compute

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/daviszhen/blocksort/pkg/collation"
)

const (
	DirectionAsc  = 1
	DirectionDesc = -1
)

// SortColumnDescription describes one sort key. The column is found by
// ColumnName when it is not empty, otherwise by ColumnNumber.
type SortColumnDescription struct {
	ColumnName   string
	ColumnNumber int
	// 1 ascending, -1 descending
	Direction int
	// nil means bytewise ordering; ignored for non string columns
	Collator *collation.Collator
}

func ByName(name string, direction int) SortColumnDescription {
	return SortColumnDescription{
		ColumnName: name,
		Direction:  direction,
	}
}

func ByPosition(pos int, direction int) SortColumnDescription {
	return SortColumnDescription{
		ColumnNumber: pos,
		Direction:    direction,
	}
}

func (desc SortColumnDescription) WithCollation(coll *collation.Collator) SortColumnDescription {
	desc.Collator = coll
	return desc
}

func (desc SortColumnDescription) String() string {
	key := desc.ColumnName
	if key == "" {
		key = fmt.Sprintf("#%d", desc.ColumnNumber)
	}
	dir := "asc"
	if desc.Direction == DirectionDesc {
		dir = "desc"
	}
	if desc.Collator != nil {
		return fmt.Sprintf("%s %s collate %s", key, dir, desc.Collator)
	}
	return fmt.Sprintf("%s %s", key, dir)
}

// SortDescription lists sort keys by priority.
type SortDescription []SortColumnDescription

// WithoutCollation copies the description dropping all collators.
func (desc SortDescription) WithoutCollation() SortDescription {
	ret := make(SortDescription, len(desc))
	for i, key := range desc {
		key.Collator = nil
		ret[i] = key
	}
	return ret
}

// CloneCollators gives every key its own collator, for use from
// another goroutine.
func (desc SortDescription) CloneCollators() SortDescription {
	ret := make(SortDescription, len(desc))
	for i, key := range desc {
		if key.Collator != nil {
			key.Collator = key.Collator.Clone()
		}
		ret[i] = key
	}
	return ret
}

func (desc SortDescription) Print(tree treeprint.Tree) {
	branch := tree.AddBranch("order by")
	for _, key := range desc {
		branch.AddNode(key.String())
	}
}

func Explain(desc SortDescription, limit int) string {
	tree := treeprint.NewWithRoot("Sort:")
	desc.Print(tree)
	if limit > 0 {
		tree.AddNode(fmt.Sprintf("limit %d", limit))
	}
	return tree.String()
}

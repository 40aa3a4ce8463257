package source

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/daviszhen/blocksort/pkg/common"
)

type ColumnDefinition struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Schema describes the columns of an input file in file order.
//
//	[[columns]]
//	name = "id"
//	type = "bigint"
type Schema struct {
	Columns []ColumnDefinition `toml:"columns"`

	types []common.LType
}

func LoadSchema(path string) (*Schema, error) {
	sch := &Schema{}
	_, err := toml.DecodeFile(path, sch)
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", path, err)
	}
	return sch, sch.init()
}

func ParseSchema(data string) (*Schema, error) {
	sch := &Schema{}
	_, err := toml.Decode(data, sch)
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return sch, sch.init()
}

func (sch *Schema) init() error {
	if len(sch.Columns) == 0 {
		return fmt.Errorf("schema has no columns")
	}
	seen := make(map[string]bool)
	sch.types = make([]common.LType, len(sch.Columns))
	for i, def := range sch.Columns {
		if def.Name == "" {
			return fmt.Errorf("column %d has no name", i)
		}
		if seen[def.Name] {
			return fmt.Errorf("duplicate column %s in schema", def.Name)
		}
		seen[def.Name] = true
		typ, err := common.ParseLType(def.Type)
		if err != nil {
			return fmt.Errorf("column %s: %w", def.Name, err)
		}
		sch.types[i] = typ
	}
	return nil
}

func (sch *Schema) Types() []common.LType {
	return sch.types
}

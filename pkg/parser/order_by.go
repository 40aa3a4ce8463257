// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"errors"
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/daviszhen/blocksort/pkg/collation"
	"github.com/daviszhen/blocksort/pkg/compute"
)

var ErrUnsupportedOrderBy = errors.New("unsupported order by")

type OrderBy struct {
	Desc  compute.SortDescription
	Limit int
}

// ParseOrderBy parses "ORDER BY <key> [ASC|DESC] [, ...] [LIMIT n]".
// A key is a column name, a 1-based column position or
// `<key> COLLATE "<locale>"`.
func ParseOrderBy(clause string) (*OrderBy, error) {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return &OrderBy{}, nil
	}
	stmts, err := Parse("SELECT * FROM t " + clause)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, fmt.Errorf("%w: expect one clause, got %d statements", ErrUnsupportedOrderBy, len(stmts))
	}
	sel := stmts[0].GetStmt().GetSelectStmt()
	if sel == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOrderBy, clause)
	}
	if sel.GetWhereClause() != nil || len(sel.GetGroupClause()) != 0 || sel.GetLimitOffset() != nil {
		return nil, fmt.Errorf("%w: only ORDER BY and LIMIT are allowed in %q", ErrUnsupportedOrderBy, clause)
	}

	ret := &OrderBy{}
	for _, node := range sel.GetSortClause() {
		sortBy := node.GetSortBy()
		if sortBy == nil {
			return nil, fmt.Errorf("%w: unexpected node %T", ErrUnsupportedOrderBy, node.GetNode())
		}
		key, err := bindSortBy(sortBy)
		if err != nil {
			return nil, err
		}
		ret.Desc = append(ret.Desc, key)
	}

	if limit := sel.GetLimitCount(); limit != nil {
		aconst := limit.GetAConst()
		if aconst == nil || aconst.GetIval() == nil {
			return nil, fmt.Errorf("%w: limit must be an integer constant", ErrUnsupportedOrderBy)
		}
		ret.Limit = int(aconst.GetIval().GetIval())
		if ret.Limit < 0 {
			return nil, fmt.Errorf("%w: negative limit %d", ErrUnsupportedOrderBy, ret.Limit)
		}
	}
	return ret, nil
}

func bindSortBy(expr *pg_query.SortBy) (compute.SortColumnDescription, error) {
	ret := compute.SortColumnDescription{}
	switch expr.SortbyDir {
	case pg_query.SortByDir_SORTBY_DEFAULT,
		pg_query.SortByDir_SORTBY_ASC:
		ret.Direction = compute.DirectionAsc
	case pg_query.SortByDir_SORTBY_DESC:
		ret.Direction = compute.DirectionDesc
	default:
		return ret, fmt.Errorf("%w: direction %v", ErrUnsupportedOrderBy, expr.SortbyDir)
	}
	switch expr.SortbyNulls {
	case pg_query.SortByNulls_SORT_BY_NULLS_UNDEFINED,
		pg_query.SortByNulls_SORTBY_NULLS_DEFAULT:
	default:
		return ret, fmt.Errorf("%w: columns are not nullable, %v", ErrUnsupportedOrderBy, expr.SortbyNulls)
	}

	node := expr.GetNode()
	if collate := node.GetCollateClause(); collate != nil {
		locale := collationName(collate)
		coll, err := collation.New(locale)
		if err != nil {
			return ret, err
		}
		ret.Collator = coll
		node = collate.GetArg()
	}

	switch {
	case node.GetColumnRef() != nil:
		fields := node.GetColumnRef().GetFields()
		name := fields[len(fields)-1].GetString_().GetSval()
		if name == "" {
			return ret, fmt.Errorf("%w: column reference %v", ErrUnsupportedOrderBy, node)
		}
		ret.ColumnName = name
	case node.GetAConst() != nil && node.GetAConst().GetIval() != nil:
		pos := int(node.GetAConst().GetIval().GetIval())
		if pos < 1 {
			return ret, fmt.Errorf("%w: column position %d is not positive", ErrUnsupportedOrderBy, pos)
		}
		ret.ColumnNumber = pos - 1
	default:
		return ret, fmt.Errorf("%w: sort key must be a column name or position", ErrUnsupportedOrderBy)
	}
	return ret, nil
}

func collationName(expr *pg_query.CollateClause) string {
	name := ""
	for _, node := range expr.GetCollname() {
		if node.GetString_().GetSval() == "pg_catalog" {
			continue
		}
		name = node.GetString_().GetSval()
	}
	return name
}

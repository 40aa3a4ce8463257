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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/blocksort/pkg/parser"
	"github.com/daviszhen/blocksort/pkg/util"
)

const testSchema = `
[[columns]]
name = "id"
type = "integer"

[[columns]]
name = "name"
type = "varchar"
`

func prepareInput(t *testing.T) *util.Config {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.csv")
	schemaPath := filepath.Join(dir, "schema.toml")
	require.NoError(t, os.WriteFile(dataPath, []byte("3,c\n1,a\n2,b\n5,e\n4,d\n"), 0644))
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	cfg := util.DefaultConfig()
	cfg.Input.Path = dataPath
	cfg.Input.SchemaPath = schemaPath
	cfg.Sort.BatchSize = 2
	cfg.Sort.Parallel = 2
	return cfg
}

func TestRunSort(t *testing.T) {
	cfg := prepareInput(t)
	cfg.Sort.OrderBy = "ORDER BY id"
	out := &bytes.Buffer{}
	require.NoError(t, runSort(context.Background(), cfg, out))
	assert.Equal(t, "1\ta\n3\tc\n2\tb\n5\te\n4\td\n", out.String())
}

func TestRunSortLimit(t *testing.T) {
	cfg := prepareInput(t)
	cfg.Sort.OrderBy = "ORDER BY 2 DESC LIMIT 1"
	out := &bytes.Buffer{}
	require.NoError(t, runSort(context.Background(), cfg, out))
	assert.Equal(t, "3\tc\n5\te\n4\td\n", out.String())

	// the flag wins over the clause
	cfg.Sort.OrderBy = "ORDER BY id LIMIT 1"
	cfg.Sort.Limit = 2
	cfg.Sort.BatchSize = 5
	out.Reset()
	require.NoError(t, runSort(context.Background(), cfg, out))
	assert.Equal(t, "1\ta\n2\tb\n", out.String())
}

func TestRunSortLocale(t *testing.T) {
	cfg := prepareInput(t)
	require.NoError(t, os.WriteFile(cfg.Input.Path, []byte("1,zebra\n2,Ärger\n3,apple\n"), 0644))
	cfg.Sort.BatchSize = 10
	cfg.Sort.OrderBy = "ORDER BY name"
	out := &bytes.Buffer{}
	require.NoError(t, runSort(context.Background(), cfg, out))
	assert.Equal(t, "3\tapple\n1\tzebra\n2\tÄrger\n", out.String())

	cfg.Sort.Locale = "de"
	out.Reset()
	require.NoError(t, runSort(context.Background(), cfg, out))
	assert.Equal(t, "3\tapple\n2\tÄrger\n1\tzebra\n", out.String())

	cfg.Sort.Locale = "not a locale!"
	assert.Error(t, runSort(context.Background(), cfg, &bytes.Buffer{}))
}

func TestRunSortPlan(t *testing.T) {
	cfg := prepareInput(t)
	cfg.Sort.OrderBy = `ORDER BY name COLLATE "de" DESC LIMIT 3`
	cfg.Debug.PrintPlan = true
	cfg.Debug.PrintResult = false
	out := &bytes.Buffer{}
	require.NoError(t, runSort(context.Background(), cfg, out))

	orderBy, err := parser.ParseOrderBy(cfg.Sort.OrderBy)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "name desc collate de")
	assert.Contains(t, out.String(), "limit 3")
	assert.Equal(t, 3, orderBy.Limit)
}

func TestRunSortErrors(t *testing.T) {
	cfg := prepareInput(t)
	cfg.Sort.OrderBy = "ORDER BY missing"
	err := runSort(context.Background(), cfg, &bytes.Buffer{})
	assert.Error(t, err)

	cfg = prepareInput(t)
	cfg.Sort.OrderBy = "ORDER BY id NULLS LAST"
	err = runSort(context.Background(), cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, parser.ErrUnsupportedOrderBy)

	cfg = prepareInput(t)
	cfg.Input.Path = ""
	assert.Error(t, runSort(context.Background(), cfg, &bytes.Buffer{}))

	cfg = prepareInput(t)
	cfg.Input.SchemaPath = ""
	assert.Error(t, runSort(context.Background(), cfg, &bytes.Buffer{}))
}

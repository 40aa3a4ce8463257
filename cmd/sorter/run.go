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
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daviszhen/blocksort/pkg/block"
	"github.com/daviszhen/blocksort/pkg/collation"
	"github.com/daviszhen/blocksort/pkg/compute"
	"github.com/daviszhen/blocksort/pkg/parser"
	"github.com/daviszhen/blocksort/pkg/source"
	"github.com/daviszhen/blocksort/pkg/util"
)

type sortedBatch struct {
	blk     *block.Block
	inRows  int
	outRows int
}

// runSort reads the input batch by batch and sorts every batch on its own.
// Batches are written in input order.
func runSort(ctx context.Context, cfg *util.Config, out io.Writer) error {
	if cfg.Input.Path == "" {
		return errors.New("no input path")
	}
	if cfg.Input.SchemaPath == "" {
		return errors.New("no schema path")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	orderBy, err := parser.ParseOrderBy(cfg.Sort.OrderBy)
	if err != nil {
		return err
	}
	if cfg.Sort.Locale != "" {
		coll, err := collation.New(cfg.Sort.Locale)
		if err != nil {
			return err
		}
		for i := range orderBy.Desc {
			if orderBy.Desc[i].Collator == nil {
				orderBy.Desc[i].Collator = coll
			}
		}
	}
	limit := orderBy.Limit
	if cfg.Sort.Limit > 0 {
		limit = cfg.Sort.Limit
	}
	if cfg.Debug.PrintPlan {
		_, err = fmt.Fprintln(out, compute.Explain(orderBy.Desc, limit))
		if err != nil {
			return err
		}
	}

	schema, err := source.LoadSchema(cfg.Input.SchemaPath)
	if err != nil {
		return err
	}
	reader, err := source.NewReader(&cfg.Input, schema, cfg.Sort.BatchSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Sort.Parallel, 1))
	batches := make([]*sortedBatch, 0)
	for gctx.Err() == nil {
		blk, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			_ = g.Wait()
			return err
		}
		batch := &sortedBatch{blk: blk, inRows: blk.Rows()}
		batches = append(batches, batch)
		// collators keep per call buffers
		desc := orderBy.Desc.CloneCollators()
		g.Go(func() error {
			err := compute.SortBlock(batch.blk, desc, limit)
			if err != nil {
				return err
			}
			batch.outRows = batch.blk.Rows()
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return err
	}

	inRows, outRows := 0, 0
	for _, batch := range batches {
		inRows += batch.inRows
		outRows += batch.outRows
		if cfg.Debug.PrintResult {
			err = batch.blk.Dump(out)
			if err != nil {
				return err
			}
		}
	}
	util.Info("sort done",
		zap.String("input", cfg.Input.Path),
		zap.Int("batches", len(batches)),
		zap.Int("inRows", inRows),
		zap.Int("outRows", outRows))
	return nil
}

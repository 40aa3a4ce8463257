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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daviszhen/blocksort/pkg/util"
)

func init() {
	cobra.OnInitialize(loadConfig)
	initSortCmd()
}

var sorterCfg = util.DefaultConfig()

///root cmd

var info = "sorter"
var RootCmd = &cobra.Command{
	Use:          "sorter",
	Short:        info,
	Long:         info,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("use sorter --help or -h")
	},
}

//sort cmd

var sortInfo = "sort a csv or parquet file batch by batch"
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: sortInfo,
	Long:  sortInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		initSortCfg()
		err := util.SetLogLevel(sorterCfg.Debug.LogLevel)
		if err != nil {
			return err
		}
		defer util.Sync()
		return runSort(cmd.Context(), sorterCfg, os.Stdout)
	},
}

func initSortCfg() {
	sorterCfg.Sort.OrderBy = viper.GetString("sort.orderBy")
	sorterCfg.Sort.Limit = viper.GetInt("sort.limit")
	sorterCfg.Sort.BatchSize = viper.GetInt("sort.batchSize")
	sorterCfg.Sort.Parallel = viper.GetInt("sort.parallel")
	sorterCfg.Sort.Locale = viper.GetString("sort.locale")
	sorterCfg.Input.Path = viper.GetString("input.path")
	sorterCfg.Input.Format = viper.GetString("input.format")
	sorterCfg.Input.SchemaPath = viper.GetString("input.schemaPath")
	sorterCfg.Input.Delimiter = viper.GetString("input.delimiter")
	sorterCfg.Input.HasHeader = viper.GetBool("input.hasHeader")
	sorterCfg.Debug.PrintPlan = viper.GetBool("debug.printPlan")
	sorterCfg.Debug.PrintResult = viper.GetBool("debug.printResult")
	sorterCfg.Debug.LogLevel = viper.GetString("debug.logLevel")
}

func initSortCmd() {
	RootCmd.AddCommand(sortCmd)
	def := util.DefaultConfig()
	flags := sortCmd.Flags()
	flags.String("order_by", "", `order by clause, e.g. "ORDER BY a DESC, b COLLATE \"de\" LIMIT 10"`)
	flags.Int("limit", 0, "rows kept per batch, 0 keeps all. overrides the LIMIT of order_by")
	flags.Int("batch_size", def.Sort.BatchSize, "rows per block")
	flags.Int("parallel", def.Sort.Parallel, "blocks sorted concurrently")
	flags.String("locale", "", "default collation of string keys, e.g. de, sv")
	flags.String("input_path", "", "input file path")
	flags.String("input_format", def.Input.Format, "input format. csv, parquet")
	flags.String("schema_path", "", "toml schema of the input file")
	flags.String("delimiter", def.Input.Delimiter, "csv delimiter")
	flags.Bool("has_header", false, "csv file starts with a header line")
	flags.Bool("print_plan", false, "print the sort description")
	flags.Bool("print_result", def.Debug.PrintResult, "print sorted rows")
	flags.String("log_level", def.Debug.LogLevel, "debug, info, warn, error")

	viper.BindPFlag("sort.orderBy", flags.Lookup("order_by"))
	viper.BindPFlag("sort.limit", flags.Lookup("limit"))
	viper.BindPFlag("sort.batchSize", flags.Lookup("batch_size"))
	viper.BindPFlag("sort.parallel", flags.Lookup("parallel"))
	viper.BindPFlag("sort.locale", flags.Lookup("locale"))
	viper.BindPFlag("input.path", flags.Lookup("input_path"))
	viper.BindPFlag("input.format", flags.Lookup("input_format"))
	viper.BindPFlag("input.schemaPath", flags.Lookup("schema_path"))
	viper.BindPFlag("input.delimiter", flags.Lookup("delimiter"))
	viper.BindPFlag("input.hasHeader", flags.Lookup("has_header"))
	viper.BindPFlag("debug.printPlan", flags.Lookup("print_plan"))
	viper.BindPFlag("debug.printResult", flags.Lookup("print_result"))
	viper.BindPFlag("debug.logLevel", flags.Lookup("log_level"))
}

var defCfgFilePaths = []string{".", "etc/sorter"}
var cfgFileName = "sorter.toml"

// loadConfig is optional: flags alone are enough to run.
func loadConfig() {
	for _, dirPath := range defCfgFilePaths {
		fpath := filepath.Join(dirPath, cfgFileName)
		if util.FileIsValid(fpath) {
			viper.SetConfigFile(fpath)
			err := viper.ReadInConfig()
			if err != nil {
				util.Error("viper load config file failed",
					zap.String("fpath", fpath),
					zap.Error(err))
				continue
			}
			util.Info("config loaded", zap.String("fpath", fpath))
			return
		}
	}
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

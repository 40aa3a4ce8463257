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

package util

type SortOptions struct {
	OrderBy   string `toml:"orderBy"`
	Limit     int    `toml:"limit"`
	BatchSize int    `toml:"batchSize"`
	Parallel  int    `toml:"parallel"`
	// collation for string keys without an explicit COLLATE
	Locale    string `toml:"locale"`
}

type InputOptions struct {
	Path       string `toml:"path"`
	Format     string `toml:"format"`
	SchemaPath string `toml:"schemaPath"`
	Delimiter  string `toml:"delimiter"`
	HasHeader  bool   `toml:"hasHeader"`
}

type DebugOptions struct {
	PrintPlan   bool   `toml:"printPlan"`
	PrintResult bool   `toml:"printResult"`
	LogLevel    string `toml:"logLevel"`
}

type Config struct {
	Sort  SortOptions  `toml:"sort"`
	Input InputOptions `toml:"input"`
	Debug DebugOptions `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Sort: SortOptions{
			BatchSize: DefaultVectorSize,
			Parallel:  1,
		},
		Input: InputOptions{
			Format:    "csv",
			Delimiter: ",",
		},
		Debug: DebugOptions{
			PrintResult: true,
			LogLevel:    "info",
		},
	}
}

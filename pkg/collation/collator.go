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

package collation

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings by the rules of one locale.
// It keeps internal buffers and must not be shared between goroutines.
type Collator struct {
	locale string
	tag    language.Tag
	coll   *collate.Collator
	buf    collate.Buffer
}

// New builds a collator for a BCP 47 locale such as "de", "sv" or
// "en-u-ks-level2" (case insensitive).
func New(locale string) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("unsupported collation locale %q: %w", locale, err)
	}
	return &Collator{
		locale: locale,
		tag:    tag,
		coll:   collate.New(tag),
	}, nil
}

func (c *Collator) Locale() string {
	return c.locale
}

func (c *Collator) Tag() language.Tag {
	return c.tag
}

func (c *Collator) Compare(a, b string) int {
	return c.coll.CompareString(a, b)
}

// SortKeys returns one collation key per input. Comparing two keys with
// bytes.Compare gives the same sign as Compare on the original strings.
func (c *Collator) SortKeys(values []string) [][]byte {
	keys := make([][]byte, len(values))
	for i, v := range values {
		key := c.coll.KeyFromString(&c.buf, v)
		keys[i] = append([]byte(nil), key...)
		c.buf.Reset()
	}
	return keys
}

// Clone returns an independent collator for the same locale.
func (c *Collator) Clone() *Collator {
	return &Collator{
		locale: c.locale,
		tag:    c.tag,
		coll:   collate.New(c.tag),
	}
}

func (c *Collator) String() string {
	return c.locale
}

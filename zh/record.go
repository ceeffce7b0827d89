// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package zh

import (
	"strings"

	"github.com/ianlewis/go-cjkdict/entry"
)

// Record is a Chinese lexicon record.
type Record struct {
	Pinyin     string `json:"pinyin"`
	Definition string `json:"definition"`
	HSK        int    `json:"hsk,omitempty"`
}

// Entry normalizes the record. CC-CEDICT style definitions separated by
// "/" or ";" become separate definitions.
func (r Record) Entry() entry.Entry {
	parts := strings.FieldsFunc(r.Definition, func(c rune) bool {
		return c == '/' || c == ';'
	})
	return entry.Entry{
		Reading:     r.Pinyin,
		Definitions: entry.SplitDefinitions(parts, nil),
		Level:       r.HSK,
	}
}

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

package ko

import (
	"strings"

	"github.com/ianlewis/go-cjkdict/entry"
)

// Record is a Korean lexicon record.
type Record struct {
	Reading     string `json:"r"`
	Definitions string `json:"d"`
	POS         string `json:"p,omitempty"`
	IPA         string `json:"i,omitempty"`

	// Word is set on romanization aliases and names the canonical word.
	Word string `json:"w,omitempty"`
}

// IsAlias reports whether the record only points at another word.
func (r Record) IsAlias() bool {
	return r.Word != ""
}

// Entry normalizes the record. Definitions and parts of speech are "; "
// joined lists paired by position.
func (r Record) Entry() entry.Entry {
	var pos []string
	if r.POS != "" {
		pos = strings.Split(r.POS, "; ")
	}
	e := entry.Entry{
		Reading:     r.Reading,
		Definitions: entry.SplitDefinitions(strings.Split(r.Definitions, "; "), pos),
	}
	if r.IPA != "" {
		e.GrammarNotes = "IPA: " + r.IPA
	}
	return e
}

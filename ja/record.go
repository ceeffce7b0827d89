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

package ja

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ianlewis/go-cjkdict/entry"
)

// Sense is one sense of a Japanese lexicon record.
type Sense struct {
	Gloss []string `json:"gloss"`
	POS   []string `json:"pos,omitempty"`
	Info  []string `json:"info,omitempty"`
}

// JLPT is a JLPT level (5 is N5). It decodes from numbers and from strings
// such as "5", "N5" or "jlpt-n5".
type JLPT int

// UnmarshalJSON implements [json.Unmarshaler].
func (j *JLPT) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*j = JLPT(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Unknown shapes are ignored rather than failing the whole lexicon.
		*j = 0
		return nil
	}
	s = strings.TrimPrefix(strings.ToLower(s), "jlpt-")
	s = strings.TrimPrefix(s, "n")
	n, err := strconv.Atoi(s)
	if err != nil {
		n = 0
	}
	*j = JLPT(n)
	return nil
}

// Record is a Japanese lexicon record.
type Record struct {
	Kanji   string  `json:"kanji,omitempty"`
	Reading string  `json:"reading"`
	Senses  []Sense `json:"senses"`
	Common  bool    `json:"common,omitempty"`
	JLPT    JLPT    `json:"jlpt,omitempty"`
}

// Entry normalizes the record. Each sense becomes one definition whose
// meaning joins the sense glosses.
func (r Record) Entry() entry.Entry {
	e := entry.Entry{
		Reading: r.Reading,
		Level:   int(r.JLPT),
	}
	var notes []string
	for _, s := range r.Senses {
		meaning := strings.Join(s.Gloss, "; ")
		if meaning == "" {
			continue
		}
		e.Definitions = append(e.Definitions, entry.Definition{
			Meaning:      meaning,
			PartOfSpeech: strings.Join(s.POS, ", "),
		})
		notes = append(notes, s.Info...)
	}
	e.GrammarNotes = strings.Join(notes, "; ")
	return e
}

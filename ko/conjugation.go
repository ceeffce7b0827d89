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
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-cjkdict/entry"
)

// Ending is a known verb ending. Hada endings include the 하 of a 하다
// verb so that the stem is the noun part (e.g. 공부 in 공부합니다).
type Ending struct {
	Suffix string
	Hada   bool
}

// VerbEndings lists the known verb endings in declaration order.
var VerbEndings = []Ending{
	{Suffix: "합니다", Hada: true},
	{Suffix: "했습니다", Hada: true},
	{Suffix: "해요", Hada: true},
	{Suffix: "했어요", Hada: true},
	{Suffix: "한다", Hada: true},
	{Suffix: "했다", Hada: true},
	{Suffix: "했어", Hada: true},
	{Suffix: "해", Hada: true},
	{Suffix: "습니다"},
	{Suffix: "어요"},
	{Suffix: "아요"},
	{Suffix: "었습니다"},
	{Suffix: "았습니다"},
	{Suffix: "었어요"},
	{Suffix: "았어요"},
	{Suffix: "는다"},
	{Suffix: "었다"},
	{Suffix: "았다"},
	{Suffix: "었어"},
	{Suffix: "았어"},
}

// Conjugation is a detected verb ending.
type Conjugation struct {
	Stem   string
	Ending string
	// Type is polite-formal, polite-informal or casual, prefixed with
	// "past-" for past tense endings.
	Type string
	Hada bool
}

// DictionaryForm reconstructs the dictionary form of the verb.
func (c Conjugation) DictionaryForm() string {
	if c.Hada {
		return c.Stem + "하다"
	}
	return c.Stem + "다"
}

// Info converts c into the conjugation metadata of a result for the given
// surface form.
func (c Conjugation) Info(word string) *entry.ConjugationInfo {
	return &entry.ConjugationInfo{
		DictionaryForm:  c.DictionaryForm(),
		ConjugatedForm:  word,
		ConjugationType: c.Type,
	}
}

// Formality maps the conjugation type to a register.
func (c Conjugation) Formality() entry.Formality {
	switch strings.TrimPrefix(c.Type, "past-") {
	case "polite-formal":
		return entry.Formal
	case "polite-informal":
		return entry.Polite
	case "casual":
		return entry.Casual
	}
	return entry.FormalityUnknown
}

// DetectorOptions configures a ConjugationDetector.
type DetectorOptions struct {
	// Endings overrides VerbEndings.
	Endings []Ending

	// PreserveOrder checks endings in declaration order. By default the
	// longest matching ending wins, so that e.g. 었어요 is preferred over
	// 어요.
	PreserveOrder bool
}

// ConjugationDetector finds known verb endings on words.
type ConjugationDetector struct {
	endings []Ending
}

// NewConjugationDetector returns a detector. A nil opts uses VerbEndings
// sorted by descending length.
func NewConjugationDetector(opts *DetectorOptions) *ConjugationDetector {
	var o DetectorOptions
	if opts != nil {
		o = *opts
	}
	endings := o.Endings
	if endings == nil {
		endings = VerbEndings
	}
	endings = slices.Clone(endings)
	if !o.PreserveOrder {
		slices.SortStableFunc(endings, func(a, b Ending) int {
			return utf8.RuneCountInString(b.Suffix) - utf8.RuneCountInString(a.Suffix)
		})
	}
	return &ConjugationDetector{endings: endings}
}

// Endings returns the endings in the order they are checked.
func (d *ConjugationDetector) Endings() []Ending {
	return slices.Clone(d.endings)
}

// Detect returns the first ending that is a suffix of word and leaves a
// non-empty stem.
func (d *ConjugationDetector) Detect(word string) (Conjugation, bool) {
	for _, e := range d.endings {
		if e.Suffix == "" || !strings.HasSuffix(word, e.Suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, e.Suffix)
		if stem == "" {
			continue
		}
		return Conjugation{
			Stem:   stem,
			Ending: e.Suffix,
			Type:   conjugationType(e.Suffix),
			Hada:   e.Hada,
		}, true
	}
	return Conjugation{}, false
}

func conjugationType(ending string) string {
	t := "casual"
	switch {
	case strings.Contains(ending, "니다"):
		t = "polite-formal"
	case strings.HasSuffix(ending, "요"):
		t = "polite-informal"
	}
	if strings.ContainsAny(ending, "었았했였") {
		t = "past-" + t
	}
	return t
}

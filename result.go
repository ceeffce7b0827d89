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

package cjkdict

import (
	"github.com/ianlewis/go-cjkdict/entry"
)

// Sources name the step that produced a result.
const (
	SourceSpecial    = "special"
	SourceLexicon    = "lexicon"
	SourceMorphology = "morphology"
	SourceNone       = "none"

	// Remote results are reported as SourceRemotePrefix plus the provider
	// name, e.g. "remote:jisho".
	SourceRemotePrefix = "remote:"
)

// Result is the outcome of resolving a word. It is always well-formed; when
// Found is false Hint may explain why.
type Result struct {
	// Word is the headword the entry was found under. It is the dictionary
	// form for conjugated input.
	Word string `json:"word"`

	Reading string `json:"reading"`

	// Definition is every definition joined with "; ".
	Definition   string             `json:"definition"`
	Definitions  []entry.Definition `json:"definitions,omitempty"`
	PartOfSpeech string             `json:"partOfSpeech,omitempty"`
	GrammarNotes string             `json:"grammarNotes,omitempty"`
	Formality    entry.Formality    `json:"formalityLevel,omitempty"`
	Examples     []string           `json:"examples,omitempty"`
	Level        int                `json:"level,omitempty"`

	Source string `json:"source"`
	Found  bool   `json:"found"`
	Hint   string `json:"hint,omitempty"`

	Conjugation *entry.ConjugationInfo   `json:"conjugationInfo,omitempty"`
	Particle    *entry.ParticleBreakdown `json:"particleBreakdown,omitempty"`
}

func newResult(word string, e entry.Entry, source string) Result {
	if e.Canonical != "" {
		word = e.Canonical
	}
	return Result{
		Word:         word,
		Reading:      e.Reading,
		Definition:   e.Meaning(),
		Definitions:  e.Definitions,
		PartOfSpeech: e.PartOfSpeech(),
		GrammarNotes: e.GrammarNotes,
		Formality:    e.Formality,
		Examples:     e.Examples,
		Level:        e.Level,
		Source:       source,
		Found:        true,
	}
}

func notFound(word, hint string) Result {
	return Result{
		Word:   word,
		Source: SourceNone,
		Hint:   hint,
	}
}

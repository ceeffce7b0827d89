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

// Package entry defines the normalized dictionary entry that every source
// (special-case tables, lexicons and remote providers) maps into.
package entry

import (
	"strings"
)

// Formality is the register of a word or ending.
type Formality string

const (
	// FormalityUnknown means no register is known.
	FormalityUnknown Formality = ""

	// Casual is plain/informal speech.
	Casual Formality = "casual"

	// Polite is polite speech (e.g. Korean 해요체, Japanese です/ます).
	Polite Formality = "polite"

	// Formal is formal speech (e.g. Korean 합쇼체).
	Formal Formality = "formal"
)

// Definition is a single sense of an entry.
type Definition struct {
	Meaning      string `json:"meaning"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
}

// Entry is a normalized dictionary entry.
type Entry struct {
	// Canonical is the headword the entry was found under. It differs from
	// the looked up word for aliases and deinflected forms.
	Canonical string `json:"canonical,omitempty"`

	Reading      string       `json:"reading"`
	Definitions  []Definition `json:"definitions"`
	GrammarNotes string       `json:"grammarNotes,omitempty"`
	Formality    Formality    `json:"formalityLevel,omitempty"`
	Examples     []string     `json:"examples,omitempty"`

	// Level is a proficiency level (e.g. JLPT N-level). Zero means unknown.
	Level int `json:"level,omitempty"`
}

// IsEmpty reports whether the entry carries no definition.
func (e *Entry) IsEmpty() bool {
	if e == nil {
		return true
	}
	for _, d := range e.Definitions {
		if strings.TrimSpace(d.Meaning) != "" {
			return false
		}
	}
	return true
}

// Meaning joins all definition meanings with "; ".
func (e *Entry) Meaning() string {
	if e == nil {
		return ""
	}
	meanings := make([]string, 0, len(e.Definitions))
	for _, d := range e.Definitions {
		if d.Meaning != "" {
			meanings = append(meanings, d.Meaning)
		}
	}
	return strings.Join(meanings, "; ")
}

// PartOfSpeech returns the first non-empty part of speech.
func (e *Entry) PartOfSpeech() string {
	if e == nil {
		return ""
	}
	for _, d := range e.Definitions {
		if d.PartOfSpeech != "" {
			return d.PartOfSpeech
		}
	}
	return ""
}

// Merge returns a copy of base with every empty field filled from overlay.
// Neither argument is modified.
func Merge(base, overlay Entry) Entry {
	out := base
	if out.Canonical == "" {
		out.Canonical = overlay.Canonical
	}
	if out.Reading == "" {
		out.Reading = overlay.Reading
	}
	if len(out.Definitions) == 0 {
		out.Definitions = overlay.Definitions
	}
	if out.GrammarNotes == "" {
		out.GrammarNotes = overlay.GrammarNotes
	}
	if out.Formality == FormalityUnknown {
		out.Formality = overlay.Formality
	}
	if len(out.Examples) == 0 {
		out.Examples = overlay.Examples
	}
	if out.Level == 0 {
		out.Level = overlay.Level
	}
	out.Definitions = clone(out.Definitions)
	out.Examples = clone(out.Examples)
	return out
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}

// SplitDefinitions splits a joined definition string into definitions,
// pairing each with the part of speech at the same position in pos, or the
// last one when pos is shorter.
func SplitDefinitions(defs, pos []string) []Definition {
	var out []Definition
	for i, d := range defs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		def := Definition{Meaning: d}
		switch {
		case i < len(pos):
			def.PartOfSpeech = strings.TrimSpace(pos[i])
		case len(pos) > 0:
			def.PartOfSpeech = strings.TrimSpace(pos[len(pos)-1])
		}
		out = append(out, def)
	}
	return out
}

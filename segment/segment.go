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

// Package segment defines the output of the language segmenters.
//
// A segmentation is a total, lossless partition of the input: segments are
// contiguous, non-overlapping and concatenate back to the input exactly.
// Offsets are rune (character) offsets, not byte offsets.
package segment

import (
	"strings"
	"unicode"
)

// Word is a contiguous substring of the input classified as one lexical
// unit. Start and End are half-open rune offsets.
type Word struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`

	// Particle is set on Korean particle segments split off a stem.
	Particle bool `json:"particle,omitempty"`
}

// Segmenter splits text into words.
type Segmenter interface {
	Segment(text string) []Word
}

// IsSpace reports whether the word consists only of whitespace.
func (w Word) IsSpace() bool {
	return strings.TrimFunc(w.Text, unicode.IsSpace) == ""
}

// Builder accumulates segments while tracking the rune cursor.
type Builder struct {
	words  []Word
	cursor int
}

// Add appends text as the next segment. Empty text is ignored.
func (b *Builder) Add(text string, particle bool) {
	if text == "" {
		return
	}
	n := len([]rune(text))
	b.words = append(b.words, Word{
		Text:     text,
		Start:    b.cursor,
		End:      b.cursor + n,
		Particle: particle,
	})
	b.cursor += n
}

// Words returns the accumulated segments.
func (b *Builder) Words() []Word {
	return b.words
}

// Join concatenates the text of all words.
func Join(words []Word) string {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.Text)
	}
	return sb.String()
}

// Lexical returns the words that are not whitespace-only.
func Lexical(words []Word) []Word {
	var out []Word
	for _, w := range words {
		if !w.IsSpace() {
			out = append(out, w)
		}
	}
	return out
}

// Texts returns the text of each word.
func Texts(words []Word) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, w.Text)
	}
	return out
}

// Whole returns text as a single segment, or nil for empty text.
func Whole(text string) []Word {
	var b Builder
	b.Add(text, false)
	return b.Words()
}

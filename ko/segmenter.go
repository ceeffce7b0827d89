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

// Package ko implements Korean segmentation, particle detection and verb
// ending detection.
package ko

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-cjkdict/entry"
	"github.com/ianlewis/go-cjkdict/segment"
)

// Particle is a grammatical marker attached to the end of a stem.
type Particle struct {
	Text       string
	Definition string
}

// DefaultParticles is the default particle set.
var DefaultParticles = []Particle{
	{"에서", "at; in; from (location of action)"},
	{"에게", "to (a person)"},
	{"한테", "to (a person, colloquial)"},
	{"께서", "subject marker (honorific)"},
	{"으로", "toward; by means of"},
	{"부터", "from; starting at"},
	{"까지", "until; up to"},
	{"보다", "than"},
	{"처럼", "like; as"},
	{"이랑", "and; with (colloquial)"},
	{"하고", "and; with"},
	{"마다", "every; each"},
	{"조차", "even"},
	{"밖에", "only; nothing but"},
	{"은", "topic marker"},
	{"는", "topic marker"},
	{"이", "subject marker"},
	{"가", "subject marker"},
	{"을", "object marker"},
	{"를", "object marker"},
	{"에", "at; to; in"},
	{"의", "possessive marker"},
	{"도", "also; too"},
	{"만", "only"},
	{"로", "toward; by means of"},
	{"와", "and; with"},
	{"과", "and; with"},
	{"랑", "and; with (colloquial)"},
	{"께", "to (honorific)"},
}

// Segmenter splits Korean text on whitespace and splits particles off the
// resulting tokens.
type Segmenter struct {
	// particles sorted by descending length.
	particles []Particle
}

// NewSegmenter returns a Segmenter using the given particle set. A nil set
// means [DefaultParticles].
func NewSegmenter(particles []Particle) *Segmenter {
	if particles == nil {
		particles = DefaultParticles
	}
	sorted := slices.Clone(particles)
	slices.SortStableFunc(sorted, func(a, b Particle) int {
		return utf8.RuneCountInString(b.Text) - utf8.RuneCountInString(a.Text)
	})
	return &Segmenter{particles: sorted}
}

// Segment implements [segment.Segmenter.Segment]. Whitespace runs are kept
// as their own segments so the result concatenates back to text; use
// [segment.Lexical] to drop them.
func (s *Segmenter) Segment(text string) []segment.Word {
	var b segment.Builder
	for _, tok := range splitSpace(text) {
		if strings.TrimFunc(tok, unicode.IsSpace) == "" {
			b.Add(tok, false)
			continue
		}
		if p, ok := s.Detect(tok); ok {
			b.Add(p.Stem, false)
			b.Add(p.Particle, true)
			continue
		}
		b.Add(tok, false)
	}
	return b.Words()
}

// Detect splits a trailing particle off word. The longest matching particle
// wins and the remaining stem must not be empty.
func (s *Segmenter) Detect(word string) (entry.ParticleBreakdown, bool) {
	for _, p := range s.particles {
		if p.Text == "" || !strings.HasSuffix(word, p.Text) {
			continue
		}
		stem := strings.TrimSuffix(word, p.Text)
		if stem == "" {
			continue
		}
		return entry.ParticleBreakdown{
			Stem:               stem,
			Particle:           p.Text,
			ParticleDefinition: p.Definition,
		}, true
	}
	return entry.ParticleBreakdown{}, false
}

// Definition returns the definition of an exact particle.
func (s *Segmenter) Definition(particle string) (string, bool) {
	for _, p := range s.particles {
		if p.Text == particle {
			return p.Definition, true
		}
	}
	return "", false
}

// splitSpace splits text into alternating runs of whitespace and
// non-whitespace.
func splitSpace(text string) []string {
	var out []string
	start := 0
	inSpace := false
	for i, r := range text {
		sp := unicode.IsSpace(r)
		if i > start && sp != inSpace {
			out = append(out, text[start:i])
			start = i
		}
		inSpace = sp
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

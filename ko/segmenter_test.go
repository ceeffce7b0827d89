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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cjkdict/entry"
	"github.com/ianlewis/go-cjkdict/segment"
)

func TestSegmenter_Segment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []segment.Word
	}{
		{
			name: "particle split",
			text: "학교에서",
			expected: []segment.Word{
				{Text: "학교", Start: 0, End: 2},
				{Text: "에서", Start: 2, End: 4, Particle: true},
			},
		},
		{
			name: "sentence",
			text: "저는  학교에 가요",
			expected: []segment.Word{
				{Text: "저", Start: 0, End: 1},
				{Text: "는", Start: 1, End: 2, Particle: true},
				{Text: "  ", Start: 2, End: 4},
				{Text: "학교", Start: 4, End: 6},
				{Text: "에", Start: 6, End: 7, Particle: true},
				{Text: " ", Start: 7, End: 8},
				{Text: "가요", Start: 8, End: 10},
			},
		},
		{
			name: "bare particle is not split",
			text: "에서",
			expected: []segment.Word{
				{Text: "에서", Start: 0, End: 2},
			},
		},
		{
			name: "leading and trailing space",
			text: " 나무 ",
			expected: []segment.Word{
				{Text: " ", Start: 0, End: 1},
				{Text: "나무", Start: 1, End: 3},
				{Text: " ", Start: 3, End: 4},
			},
		},
		{
			name:     "empty",
			text:     "",
			expected: nil,
		},
	}

	s := NewSegmenter(nil)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := s.Segment(test.text)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Segment (-want, +got):\n%s", diff)
			}
			if joined := segment.Join(got); joined != test.text {
				t.Fatalf("Join: want %q, got %q", test.text, joined)
			}
		})
	}
}

func TestSegmenter_Lexical(t *testing.T) {
	t.Parallel()

	got := segment.Texts(segment.Lexical(NewSegmenter(nil).Segment("친구와 밥을 먹었어요")))
	want := []string{"친구", "와", "밥", "을", "먹었어요"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Lexical (-want, +got):\n%s", diff)
	}
}

func TestSegmenter_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     string
		expected entry.ParticleBreakdown
		found    bool
	}{
		{
			word:     "학교에서",
			expected: entry.ParticleBreakdown{Stem: "학교", Particle: "에서", ParticleDefinition: "at; in; from (location of action)"},
			found:    true,
		},
		{
			// 에서 must win over the single-character 서.
			word:     "집에서",
			expected: entry.ParticleBreakdown{Stem: "집", Particle: "에서", ParticleDefinition: "at; in; from (location of action)"},
			found:    true,
		},
		{
			word:     "책을",
			expected: entry.ParticleBreakdown{Stem: "책", Particle: "을", ParticleDefinition: "object marker"},
			found:    true,
		},
		{
			word:  "을",
			found: false,
		},
		{
			word:  "나무",
			found: false,
		},
	}

	s := NewSegmenter(nil)
	for _, test := range tests {
		t.Run(test.word, func(t *testing.T) {
			t.Parallel()

			got, found := s.Detect(test.word)
			if found != test.found {
				t.Fatalf("Detect found: want %v, got %v", test.found, found)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Detect (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNewSegmenter_customParticles(t *testing.T) {
	t.Parallel()

	s := NewSegmenter([]Particle{{Text: "서"}, {Text: "에서"}})
	got, ok := s.Detect("학교에서")
	if !ok {
		t.Fatal("Detect: no particle")
	}
	if got.Particle != "에서" {
		t.Fatalf("Detect particle: want %q, got %q", "에서", got.Particle)
	}
	if _, ok := s.Definition("에서"); !ok {
		t.Fatal("Definition: 에서 not found")
	}
}

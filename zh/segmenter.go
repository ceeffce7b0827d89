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

// Package zh implements Chinese segmentation and lexicon records.
package zh

import (
	"github.com/ianlewis/go-cjkdict/segment"
)

// DefaultMaxWordLen is the longest candidate, in characters, tried at each
// position.
const DefaultMaxWordLen = 8

// Dictionary reports whether a word is a lexicon key.
type Dictionary interface {
	Has(word string) bool
}

// DictionaryFunc adapts a function to a Dictionary.
type DictionaryFunc func(word string) bool

// Has implements [Dictionary.Has].
func (f DictionaryFunc) Has(word string) bool {
	return f(word)
}

// Words is a Dictionary backed by a set of words.
type Words map[string]struct{}

// NewWords returns a Words set containing words.
func NewWords(words ...string) Words {
	w := make(Words, len(words))
	for _, word := range words {
		w[word] = struct{}{}
	}
	return w
}

// Has implements [Dictionary.Has].
func (w Words) Has(word string) bool {
	_, ok := w[word]
	return ok
}

// Segmenter is a forward maximum matching segmenter. At each position it
// tries candidates from MaxWordLen characters down to two and takes the
// first one found in the dictionary; otherwise it emits a single character.
// Segmentation is greedy and never revisits an emitted boundary.
type Segmenter struct {
	dict       Dictionary
	maxWordLen int
}

// NewSegmenter returns a Segmenter over dict. A maxWordLen <= 0 selects
// DefaultMaxWordLen.
func NewSegmenter(dict Dictionary, maxWordLen int) *Segmenter {
	if maxWordLen <= 0 {
		maxWordLen = DefaultMaxWordLen
	}
	return &Segmenter{
		dict:       dict,
		maxWordLen: maxWordLen,
	}
}

// Segment implements [segment.Segmenter.Segment].
func (s *Segmenter) Segment(text string) []segment.Word {
	runes := []rune(text)
	words := make([]segment.Word, 0, len(runes))

	for i := 0; i < len(runes); {
		n := 1
		for l := min(s.maxWordLen, len(runes)-i); l > 1; l-- {
			if s.dict != nil && s.dict.Has(string(runes[i:i+l])) {
				n = l
				break
			}
		}
		words = append(words, segment.Word{
			Text:  string(runes[i : i+n]),
			Start: i,
			End:   i + n,
		})
		i += n
	}

	return words
}

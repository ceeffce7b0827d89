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

// Package ja implements Japanese segmentation, lexicon records and
// conjugation recovery.
package ja

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/ianlewis/go-cjkdict/segment"
)

// Segmenter finds word boundaries with the kagome tokenizer. Segments carry
// surface text only; readings and parts of speech are attached later by
// dictionary resolution.
type Segmenter struct {
	t *tokenizer.Tokenizer
}

// NewSegmenter builds a Segmenter. Building the tokenizer loads the IPA
// dictionary and is expensive; callers should build one and share it.
func NewSegmenter() (*Segmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}
	return &Segmenter{t: t}, nil
}

// Segment implements [segment.Segmenter.Segment]. Any input the tokenizer
// does not cover (e.g. skipped whitespace) is emitted as its own segment so
// that the result is a lossless partition of text.
func (s *Segmenter) Segment(text string) []segment.Word {
	if text == "" {
		return nil
	}
	runes := []rune(text)

	var words []segment.Word
	cursor := 0
	emit := func(start, end int) {
		if start >= end {
			return
		}
		words = append(words, segment.Word{
			Text:  string(runes[start:end]),
			Start: start,
			End:   end,
		})
	}

	for _, tok := range s.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		start, end := tok.Start, tok.End
		if start < cursor || end > len(runes) || start >= end {
			continue
		}
		emit(cursor, start)
		emit(start, end)
		cursor = end
	}
	emit(cursor, len(runes))

	return words
}

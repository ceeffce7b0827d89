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
	"cmp"
	"slices"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/ianlewis/go-cjkdict/internal/folding"
	"github.com/ianlewis/go-cjkdict/internal/index"
	"github.com/ianlewis/go-cjkdict/ko"
)

var romanSeparators = strings.NewReplacer("-", "", " ", "", "'", "", ".", "")

// romanKey folds a romanized spelling so that case, width and syllable
// separators do not matter.
func romanKey(s string) string {
	return romanSeparators.Replace(folding.Key(s))
}

type romanEntry struct {
	roman string
	word  string
}

// romanIndex maps romanized spellings to Korean headwords. It is rebuilt
// each time the Korean lexicon loads.
type romanIndex struct {
	idx atomic.Pointer[index.Index[romanEntry]]
}

func (r *romanIndex) build(data map[string]ko.Record) {
	var entries []romanEntry
	for word, rec := range data {
		switch {
		case rec.IsAlias():
			if isLatin(word) {
				entries = append(entries, romanEntry{roman: word, word: rec.Word})
			}
		case isLatin(rec.Reading):
			entries = append(entries, romanEntry{roman: rec.Reading, word: word})
		}
	}
	slices.SortFunc(entries, func(a, b romanEntry) int {
		return cmp.Or(strings.Compare(a.roman, b.roman), strings.Compare(a.word, b.word))
	})
	r.idx.Store(index.NewIndex(entries, func(e romanEntry) string { return e.roman }, romanKey))
}

// lookup returns the headwords spelled q.
func (r *romanIndex) lookup(q string) []string {
	idx := r.idx.Load()
	if idx == nil {
		return nil
	}
	var words []string
	for _, e := range idx.Search(q) {
		if !slices.Contains(words, e.word) {
			words = append(words, e.word)
		}
	}
	return words
}

// isLatin reports whether s is a Latin-script word, allowing syllable
// separators.
func isLatin(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Latin, r):
			letters++
		case r == ' ' || r == '-' || r == '\'' || r == '.':
		default:
			return false
		}
	}
	return letters > 0
}

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
	"context"
	"strings"

	"github.com/ianlewis/go-cjkdict/entry"
	"github.com/ianlewis/go-cjkdict/internal/folding"
	"github.com/ianlewis/go-cjkdict/ja"
	"github.com/ianlewis/go-cjkdict/ko"
	"github.com/ianlewis/go-cjkdict/zh"
)

var specials = map[Language]map[string]entry.Entry{
	Chinese:  zh.Specials,
	Japanese: ja.Specials,
	Korean:   ko.Specials,
}

// Resolve looks up word in lang. It never fails: when no step finds the
// word the result has Found set to false and a hint.
func (e *Engine) Resolve(ctx context.Context, word string, lang Language) (res Result) {
	word = folding.Width(strings.TrimSpace(word))

	defer func() {
		if r := recover(); r != nil {
			e.log.Errorw("resolve panicked", "word", word, "lang", lang, "panic", r)
			res = notFound(word, "internal error")
		}
	}()

	if !lang.Valid() {
		return notFound(word, "unsupported language")
	}
	if word == "" || isPunctuation(word) {
		return notFound(word, hint(word, lang))
	}

	if s, ok := specials[lang][word]; ok {
		return e.withExamples(ctx, lang, newResult(word, s, SourceSpecial))
	}

	var r Result
	switch lang {
	case Chinese:
		r = e.resolveChinese(ctx, word)
	case Japanese:
		r = e.resolveJapanese(ctx, word)
	case Korean:
		r = e.resolveKorean(ctx, word)
	}
	if !r.Found {
		return r
	}
	return e.withExamples(ctx, lang, r)
}

func (e *Engine) ensureLoaded(ctx context.Context, lang Language) {
	if err := e.store.EnsureLoaded(ctx, string(lang)); err != nil {
		e.log.Warnw("lexicon unavailable", "lang", lang, "err", err)
	}
}

func (e *Engine) resolveChinese(ctx context.Context, word string) Result {
	e.ensureLoaded(ctx, Chinese)
	if rec, ok := e.zh.Get(word); ok {
		return newResult(word, rec.Entry(), SourceLexicon)
	}
	return e.resolveRemote(ctx, Chinese, word, word)
}

func (e *Engine) resolveJapanese(ctx context.Context, word string) Result {
	e.ensureLoaded(ctx, Japanese)
	if rec, ok := e.ja.Get(word); ok {
		return newResult(word, rec.Entry(), SourceLexicon)
	}

	if d, ok := ja.Deinflect(word, e.ja.Has, ja.Rules); ok {
		rec, _ := e.ja.Get(d.DictionaryForm)
		r := newResult(d.DictionaryForm, rec.Entry(), SourceMorphology)
		r.Conjugation = &entry.ConjugationInfo{
			DictionaryForm:  d.DictionaryForm,
			ConjugatedForm:  d.ConjugatedForm,
			ConjugationType: d.ConjugationType,
		}
		return r
	}

	return e.resolveRemote(ctx, Japanese, word, word)
}

// koCandidate is a Korean lexicon probe and the metadata attached when it
// hits.
type koCandidate struct {
	word        string
	conjugation *entry.ConjugationInfo
	particle    *entry.ParticleBreakdown
}

func (e *Engine) resolveKorean(ctx context.Context, word string) Result {
	conj, hasConj := e.conj.Detect(word)
	part, hasPart := e.koSeg.Detect(word)

	var candidates []koCandidate
	if hasConj {
		candidates = append(candidates, koCandidate{
			word:        conj.DictionaryForm(),
			conjugation: conj.Info(word),
		})
	}
	candidates = append(candidates, koCandidate{word: word})
	if hasPart {
		candidates = append(candidates, koCandidate{word: part.Stem, particle: &part})
	}

	e.ensureLoaded(ctx, Korean)
	for _, c := range candidates {
		headword, rec, ok := e.koRecord(c.word)
		if !ok {
			continue
		}
		r := newResult(headword, rec.Entry(), SourceLexicon)
		r.Conjugation = c.conjugation
		r.Particle = c.particle
		if c.conjugation != nil && r.Formality == entry.FormalityUnknown {
			r.Formality = conj.Formality()
		}
		return r
	}

	if isLatin(word) {
		for _, w := range e.roman.lookup(word) {
			if headword, rec, ok := e.koRecord(w); ok {
				return newResult(headword, rec.Entry(), SourceLexicon)
			}
		}
	}

	// Remote lookups use the most specific form but keep all the detected
	// metadata.
	r := e.resolveRemote(ctx, Korean, word, candidates[0].word)
	if hasConj {
		r.Conjugation = conj.Info(word)
		if r.Found && r.Formality == entry.FormalityUnknown {
			r.Formality = conj.Formality()
		}
	}
	if hasPart {
		r.Particle = &part
	}
	return r
}

// koRecord returns the record for word, following a romanization alias to
// its headword.
func (e *Engine) koRecord(word string) (string, ko.Record, bool) {
	rec, ok := e.ko.Get(word)
	if !ok {
		return "", ko.Record{}, false
	}
	if !rec.IsAlias() {
		return word, rec, true
	}
	target, ok := e.ko.Get(rec.Word)
	if !ok || target.IsAlias() {
		return "", ko.Record{}, false
	}
	return rec.Word, target, true
}

// resolveRemote queries the remote chain of lang for query. word is the
// input used for the not-found result.
func (e *Engine) resolveRemote(ctx context.Context, lang Language, word, query string) Result {
	if c, ok := e.remote[lang]; ok {
		if hit, ok := c.Lookup(ctx, query); ok {
			return newResult(query, hit.Entry, SourceRemotePrefix+hit.Provider)
		}
	}
	return notFound(word, hint(word, lang))
}

func (e *Engine) withExamples(ctx context.Context, lang Language, r Result) Result {
	if len(r.Examples) > 0 {
		return r
	}
	if x, ok := e.examples[lang]; ok {
		r.Examples = x.Strings(ctx, r.Word)
	}
	return r
}

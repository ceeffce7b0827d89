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
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ianlewis/go-cjkdict/entry"
	"github.com/ianlewis/go-cjkdict/examples"
	"github.com/ianlewis/go-cjkdict/internal/logger"
	"github.com/ianlewis/go-cjkdict/ja"
	"github.com/ianlewis/go-cjkdict/ko"
	"github.com/ianlewis/go-cjkdict/lexicon"
	"github.com/ianlewis/go-cjkdict/remote"
	"github.com/ianlewis/go-cjkdict/segment"
	"github.com/ianlewis/go-cjkdict/zh"
)

// emptySource serves an empty lexicon.
var emptySource = lexicon.SourceFunc(func(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("{}")), nil
})

// Engine segments text and resolves words. It is safe for concurrent use.
type Engine struct {
	log *zap.SugaredLogger

	store *lexicon.Store
	zh    *lexicon.Lexicon[zh.Record]
	ja    *lexicon.Lexicon[ja.Record]
	ko    *lexicon.Lexicon[ko.Record]
	roman *romanIndex

	examples map[Language]*examples.Index
	remote   map[Language]*remote.Chain

	zhSeg *zh.Segmenter
	jaSeg func() (*ja.Segmenter, error)
	koSeg *ko.Segmenter
	conj  *ko.ConjugationDetector
}

// New returns an Engine. No lexicon is loaded until it is first needed or
// EnsureLexiconLoaded is called.
func New(opts *Options) (*Engine, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Logger == nil {
		o.Logger = logger.NewLogger("engine")
	}

	e := &Engine{
		log:      o.Logger,
		store:    lexicon.NewStore(),
		roman:    &romanIndex{},
		examples: map[Language]*examples.Index{},
		remote:   map[Language]*remote.Chain{},
		jaSeg:    sync.OnceValues(ja.NewSegmenter),
		koSeg:    ko.NewSegmenter(o.Particles),
		conj: ko.NewConjugationDetector(&ko.DetectorOptions{
			PreserveOrder: o.PreserveEndingOrder,
		}),
	}

	e.zh = lexicon.New(string(Chinese), sourceOrEmpty(o.Chinese.Lexicon), &lexicon.Options[zh.Record]{
		Logger: o.Logger.Named("lexicon"),
	})
	e.ja = lexicon.New(string(Japanese), sourceOrEmpty(o.Japanese.Lexicon), &lexicon.Options[ja.Record]{
		Logger: o.Logger.Named("lexicon"),
	})
	e.ko = lexicon.New(string(Korean), sourceOrEmpty(o.Korean.Lexicon), &lexicon.Options[ko.Record]{
		Logger: o.Logger.Named("lexicon"),
		OnLoad: e.roman.build,
	})
	e.store.Register(e.zh)
	e.store.Register(e.ja)
	e.store.Register(e.ko)

	e.zhSeg = zh.NewSegmenter(e.zh, o.MaxWordLen)

	for _, l := range Languages {
		lo := o.language(l)
		if lo.Examples != nil {
			x := examples.NewIndex(l.examplesID(), lo.Examples, o.ExampleLimit)
			e.examples[l] = x
			e.store.Register(x.Lexicon())
		}
		if len(lo.Remote) > 0 {
			c, err := remote.NewChain(lo.Remote, &remote.ChainOptions{
				Timeout:   o.RemoteTimeout,
				CacheSize: o.CacheSize,
				Logger:    o.Logger.Named("remote"),
			})
			if err != nil {
				return nil, fmt.Errorf("creating %s remote chain: %w", l, err)
			}
			e.remote[l] = c
		}
	}

	return e, nil
}

func sourceOrEmpty(s lexicon.Source) lexicon.Source {
	if s == nil {
		return emptySource
	}
	return s
}

// Segment splits text into words. The result is a lossless partition of
// text. Chinese segmentation loads the Chinese lexicon first; if it cannot
// be loaded every character becomes its own word.
func (e *Engine) Segment(ctx context.Context, text string, lang Language) ([]segment.Word, error) {
	switch lang {
	case Chinese:
		if err := e.zh.EnsureLoaded(ctx); err != nil {
			e.log.Warnw("segmenting without lexicon", "lang", lang, "err", err)
		}
		return e.zhSeg.Segment(text), nil
	case Japanese:
		s, err := e.jaSeg()
		if err != nil {
			return nil, fmt.Errorf("segmenting %s: %w", lang, err)
		}
		return s.Segment(text), nil
	case Korean:
		return e.koSeg.Segment(text), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
}

// EnsureLexiconLoaded loads the lexicon, and the example index if any, of
// lang. It is used for preloading.
func (e *Engine) EnsureLexiconLoaded(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := e.store.EnsureLoaded(ctx, string(lang)); err != nil {
		return err
	}
	if _, ok := e.examples[lang]; ok {
		if err := e.store.EnsureLoaded(ctx, lang.examplesID()); err != nil {
			return err
		}
	}
	return nil
}

// DetectConjugation detects a Korean verb ending on word. It returns nil
// when no known ending matches.
func (e *Engine) DetectConjugation(word string) *entry.ConjugationInfo {
	c, ok := e.conj.Detect(word)
	if !ok {
		return nil
	}
	return c.Info(word)
}

// DetectParticle detects a Korean particle attached to word. It returns nil
// when none matches.
func (e *Engine) DetectParticle(word string) *entry.ParticleBreakdown {
	p, ok := e.koSeg.Detect(word)
	if !ok {
		return nil
	}
	return &p
}

// LexiconStatus describes one registered lexicon.
type LexiconStatus struct {
	ID      string
	State   lexicon.State
	Entries int
	Err     error
}

// LexiconStates reports the state of every registered lexicon, sorted by
// ID.
func (e *Engine) LexiconStates() []LexiconStatus {
	var out []LexiconStatus
	for _, id := range e.store.IDs() {
		l, ok := e.store.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, LexiconStatus{
			ID:      id,
			State:   l.State(),
			Entries: l.Len(),
			Err:     l.Err(),
		})
	}
	return out
}

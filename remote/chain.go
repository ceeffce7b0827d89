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

package remote

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-cjkdict/entry"
	"github.com/ianlewis/go-cjkdict/internal/logger"
	"github.com/ianlewis/go-cjkdict/textclean"
)

const (
	// DefaultTimeout bounds each provider call.
	DefaultTimeout = 6 * time.Second

	// DefaultCacheSize is the number of words whose outcome is cached.
	DefaultCacheSize = 512
)

// ChainOptions configures a Chain.
type ChainOptions struct {
	// Timeout bounds each provider call. Zero means DefaultTimeout.
	Timeout time.Duration

	// CacheSize is the LRU size. Zero means DefaultCacheSize.
	CacheSize int

	Logger *zap.SugaredLogger
}

// Hit is a successful remote lookup.
type Hit struct {
	Provider string
	Entry    entry.Entry
}

// cached is a cached lookup outcome. A nil hit is a cached miss.
type cached struct {
	hit *Hit
}

// Chain queries providers in order and returns the first non-empty result.
type Chain struct {
	providers []Provider
	timeout   time.Duration
	cache     *lru.Cache[string, cached]
	log       *zap.SugaredLogger
}

// NewChain returns a Chain over providers in priority order.
func NewChain(providers []Provider, opts *ChainOptions) (*Chain, error) {
	var o ChainOptions
	if opts != nil {
		o = *opts
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.Logger == nil {
		o.Logger = logger.NewLogger("remote")
	}

	cache, err := lru.New[string, cached](o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return &Chain{
		providers: providers,
		timeout:   o.Timeout,
		cache:     cache,
		log:       o.Logger,
	}, nil
}

// Len returns the number of providers.
func (c *Chain) Len() int {
	return len(c.providers)
}

// Lookup returns the cleaned entry from the first provider with a
// non-empty result. Provider errors and timeouts are logged and skipped.
// Hits and misses are cached; outcomes affected by an error are not.
func (c *Chain) Lookup(ctx context.Context, word string) (Hit, bool) {
	if v, ok := c.cache.Get(word); ok {
		if v.hit == nil {
			return Hit{}, false
		}
		return *v.hit, true
	}

	failed := false
	for _, p := range c.providers {
		if ctx.Err() != nil {
			return Hit{}, false
		}

		e, err := c.lookup(ctx, p, word)
		if err != nil {
			failed = true
			c.log.Warnw("remote lookup failed", "provider", p.Name(), "word", word, "err", err)
			continue
		}
		if e == nil {
			continue
		}
		cleaned := Clean(*e)
		if cleaned.IsEmpty() {
			continue
		}

		hit := &Hit{Provider: p.Name(), Entry: cleaned}
		c.cache.Add(word, cached{hit: hit})
		c.log.Debugw("remote hit", "provider", p.Name(), "word", word)
		return *hit, true
	}

	if !failed {
		c.cache.Add(word, cached{})
	}
	return Hit{}, false
}

func (c *Chain) lookup(ctx context.Context, p Provider, word string) (*entry.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return p.Lookup(ctx, word)
}

// Clean returns a copy of e with markup removed from every text field.
// Definitions left empty are dropped.
func Clean(e entry.Entry) entry.Entry {
	out := entry.Entry{
		Canonical:    textclean.Clean(e.Canonical),
		Reading:      textclean.Clean(e.Reading),
		GrammarNotes: textclean.Clean(e.GrammarNotes),
		Formality:    e.Formality,
		Level:        e.Level,
	}
	for _, d := range e.Definitions {
		m := textclean.Clean(d.Meaning)
		if m == "" {
			continue
		}
		out.Definitions = append(out.Definitions, entry.Definition{
			Meaning:      m,
			PartOfSpeech: textclean.Clean(d.PartOfSpeech),
		})
	}
	for _, ex := range e.Examples {
		if s := textclean.Clean(ex); s != "" {
			out.Examples = append(out.Examples, s)
		}
	}
	return out
}

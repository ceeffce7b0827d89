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
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cjkdict/entry"
)

type fakeProvider struct {
	name  string
	entry *entry.Entry
	err   error
	block bool
	calls atomic.Int32
}

func (p *fakeProvider) Name() string {
	return p.name
}

func (p *fakeProvider) Lookup(ctx context.Context, _ string) (*entry.Entry, error) {
	p.calls.Add(1)
	if p.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return p.entry, p.err
}

func def(meaning string) *entry.Entry {
	return &entry.Entry{Definitions: []entry.Definition{{Meaning: meaning}}}
}

func TestChain_Lookup_order(t *testing.T) {
	t.Parallel()

	miss := &fakeProvider{name: "miss"}
	empty := &fakeProvider{name: "empty", entry: def("<i></i>")}
	first := &fakeProvider{name: "first", entry: def("<b>one</b>")}
	second := &fakeProvider{name: "second", entry: def("two")}

	c, err := NewChain([]Provider{miss, empty, first, second}, nil)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	got, ok := c.Lookup(context.Background(), "w")
	if !ok {
		t.Fatal("Lookup: want hit")
	}
	want := Hit{
		Provider: "first",
		Entry:    entry.Entry{Definitions: []entry.Definition{{Meaning: "one"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}
	if n := second.calls.Load(); n != 0 {
		t.Fatalf("second provider called %d times", n)
	}
}

func TestChain_Lookup_cache(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{name: "p", entry: def("one")}
	c, err := NewChain([]Provider{p}, nil)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	for range 3 {
		if _, ok := c.Lookup(context.Background(), "w"); !ok {
			t.Fatal("Lookup: want hit")
		}
	}
	if n := p.calls.Load(); n != 1 {
		t.Fatalf("provider calls: want 1, got %d", n)
	}
}

func TestChain_Lookup_missCached(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{name: "p"}
	c, err := NewChain([]Provider{p}, nil)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	for range 2 {
		if _, ok := c.Lookup(context.Background(), "w"); ok {
			t.Fatal("Lookup: want miss")
		}
	}
	if n := p.calls.Load(); n != 1 {
		t.Fatalf("provider calls: want 1, got %d", n)
	}
}

func TestChain_Lookup_errorsNotCached(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{name: "p", err: errors.New("network down")}
	c, err := NewChain([]Provider{p}, nil)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	for range 2 {
		if _, ok := c.Lookup(context.Background(), "w"); ok {
			t.Fatal("Lookup: want miss")
		}
	}
	if n := p.calls.Load(); n != 2 {
		t.Fatalf("provider calls: want 2, got %d", n)
	}
}

func TestChain_Lookup_timeout(t *testing.T) {
	t.Parallel()

	slow := &fakeProvider{name: "slow", block: true}
	fast := &fakeProvider{name: "fast", entry: def("fast")}
	c, err := NewChain([]Provider{slow, fast}, &ChainOptions{Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	got, ok := c.Lookup(context.Background(), "w")
	if !ok {
		t.Fatal("Lookup: want hit")
	}
	if got.Provider != "fast" {
		t.Fatalf("Provider: want %q, got %q", "fast", got.Provider)
	}
}

func TestChain_Lookup_canceled(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{name: "p", entry: def("one")}
	c, err := NewChain([]Provider{p}, nil)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := c.Lookup(ctx, "w"); ok {
		t.Fatal("Lookup: want miss")
	}
	if n := p.calls.Load(); n != 0 {
		t.Fatalf("provider calls: want 0, got %d", n)
	}
	// The canceled lookup must not poison the cache.
	if _, ok := c.Lookup(context.Background(), "w"); !ok {
		t.Fatal("Lookup after cancel: want hit")
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := Clean(entry.Entry{
		Canonical: "学校",
		Reading:   " がっこう ",
		Definitions: []entry.Definition{
			{Meaning: "<b>school</b> ()", PartOfSpeech: "<i>noun</i>"},
			{Meaning: "<br>"},
		},
		Examples: []string{"<p></p>", "学校に行く &amp; 勉強する"},
		Level:    5,
	})
	want := entry.Entry{
		Canonical:   "学校",
		Reading:     "がっこう",
		Definitions: []entry.Definition{{Meaning: "school", PartOfSpeech: "noun"}},
		Examples:    []string{"学校に行く & 勉強する"},
		Level:       5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Clean (-want, +got):\n%s", diff)
	}
}

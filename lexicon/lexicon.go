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

package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ianlewis/go-cjkdict/internal/logger"
)

// ErrLoad indicates that a lexicon could not be loaded.
var ErrLoad = errors.New("loading lexicon")

// State is the load state of a lexicon.
type State int

const (
	// Unloaded means no load has been attempted.
	Unloaded State = iota

	// Loading means a load is in flight.
	Loading

	// Loaded means the data is available.
	Loaded

	// Failed means the last load attempt failed. The next EnsureLoaded
	// call retries.
	Failed
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options are options for a Lexicon.
type Options[V any] struct {
	// Logger receives load diagnostics. Defaults to a logger named
	// "lexicon".
	Logger *zap.SugaredLogger

	// OnLoad is called once with the decoded data after each successful
	// load, before the lexicon is marked Loaded. It is used to build
	// secondary indexes.
	OnLoad func(data map[string]V)
}

// Lexicon is a lazily loaded mapping from word to record.
type Lexicon[V any] struct {
	id     string
	source Source
	log    *zap.SugaredLogger
	onLoad func(data map[string]V)

	group singleflight.Group

	mu    sync.RWMutex
	state State
	data  map[string]V
	err   error
	loads int
}

// New returns a new unloaded Lexicon that reads its payload from source.
func New[V any](id string, source Source, options *Options[V]) *Lexicon[V] {
	l := &Lexicon[V]{
		id:     id,
		source: source,
	}
	if options != nil {
		l.log = options.Logger
		l.onLoad = options.OnLoad
	}
	if l.log == nil {
		l.log = logger.NewLogger("lexicon")
	}
	return l
}

// ID returns the lexicon identifier.
func (l *Lexicon[V]) ID() string {
	return l.id
}

// State returns the current load state.
func (l *Lexicon[V]) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Err returns the error of the last failed load, if the lexicon is in the
// Failed state.
func (l *Lexicon[V]) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Len returns the number of loaded entries.
func (l *Lexicon[V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.data)
}

// Loads returns the number of load attempts made so far.
func (l *Lexicon[V]) Loads() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loads
}

// Get returns the record for key. It never blocks on a load and reports a
// miss until the lexicon is loaded.
func (l *Lexicon[V]) Get(key string) (V, bool) {
	l.mu.RLock()
	data := l.data
	l.mu.RUnlock()

	v, ok := data[key]
	return v, ok
}

// Has reports whether key is present in the loaded data.
func (l *Lexicon[V]) Has(key string) bool {
	_, ok := l.Get(key)
	return ok
}

// Range calls fn for every loaded entry until fn returns false.
func (l *Lexicon[V]) Range(fn func(key string, value V) bool) {
	l.mu.RLock()
	data := l.data
	l.mu.RUnlock()

	for k, v := range data {
		if !fn(k, v) {
			return
		}
	}
}

// EnsureLoaded loads the lexicon if it is not loaded yet. Concurrent calls
// share a single load. The load itself is not canceled when ctx is; a
// caller whose ctx ends stops waiting and receives ctx.Err().
func (l *Lexicon[V]) EnsureLoaded(ctx context.Context) error {
	if l.State() == Loaded {
		return nil
	}

	ch := l.group.DoChan(l.id, func() (any, error) {
		return nil, l.load(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("%w %q: %w", ErrLoad, l.id, ctx.Err())
	}
}

func (l *Lexicon[V]) load(ctx context.Context) error {
	l.mu.Lock()
	if l.state == Loaded {
		l.mu.Unlock()
		return nil
	}
	l.state = Loading
	l.loads++
	l.mu.Unlock()

	l.log.Debugw("loading lexicon", "lexicon", l.id, "source", l.source.Name())

	data, err := l.fetch(ctx)
	if err == nil && l.onLoad != nil {
		l.onLoad(data)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = Failed
		l.err = err
		l.log.Warnw("lexicon load failed", "lexicon", l.id, "source", l.source.Name(), "err", err)
		return err
	}
	l.state = Loaded
	l.err = nil
	l.data = data
	l.log.Infow("lexicon loaded", "lexicon", l.id, "entries", len(data))
	return nil
}

func (l *Lexicon[V]) fetch(ctx context.Context) (map[string]V, error) {
	r, err := l.source.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLoad, l.id, err)
	}
	defer r.Close()

	var data map[string]V
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w %q: decoding %s: %w", ErrLoad, l.id, l.source.Name(), err)
	}
	if data == nil {
		data = map[string]V{}
	}
	return data, nil
}

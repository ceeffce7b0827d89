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
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownLexicon indicates that no lexicon is registered under an ID.
var ErrUnknownLexicon = errors.New("unknown lexicon")

// Loader is the type-independent view of a Lexicon.
type Loader interface {
	ID() string
	State() State
	Len() int
	Err() error
	EnsureLoaded(ctx context.Context) error
}

// Store is a registry of lexicons keyed by ID.
type Store struct {
	mu       sync.RWMutex
	lexicons map[string]Loader
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		lexicons: map[string]Loader{},
	}
}

// Register adds a lexicon to the store, replacing any lexicon with the same
// ID.
func (s *Store) Register(l Loader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicons[l.ID()] = l
}

// Lookup returns the lexicon registered under id.
func (s *Store) Lookup(id string) (Loader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lexicons[id]
	return l, ok
}

// IDs returns the registered IDs in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.lexicons))
	for id := range s.lexicons {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// State returns the load state of the lexicon registered under id.
func (s *Store) State(id string) (State, error) {
	l, ok := s.Lookup(id)
	if !ok {
		return Unloaded, fmt.Errorf("%w: %q", ErrUnknownLexicon, id)
	}
	return l.State(), nil
}

// EnsureLoaded loads the lexicon registered under id.
func (s *Store) EnsureLoaded(ctx context.Context, id string) error {
	l, ok := s.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLexicon, id)
	}
	return l.EnsureLoaded(ctx)
}

// Get returns the record for key from the lexicon registered under id. It
// reports a miss if the lexicon is unknown, not loaded or holds records of
// a different type.
func Get[V any](s *Store, id, key string) (V, bool) {
	var zero V
	l, ok := s.Lookup(id)
	if !ok {
		return zero, false
	}
	lex, ok := l.(*Lexicon[V])
	if !ok {
		return zero, false
	}
	return lex.Get(key)
}

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

package lexicon_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cjkdict/internal/testutil"
	"github.com/ianlewis/go-cjkdict/lexicon"
)

func TestStore(t *testing.T) {
	t.Parallel()

	s := lexicon.NewStore()
	s.Register(lexicon.New[record]("zh", testutil.NewCountingSource(t, records), nil))
	s.Register(lexicon.New[map[string]string]("ja", testutil.NewCountingSource(t, map[string]any{}), nil))

	if diff := cmp.Diff([]string{"ja", "zh"}, s.IDs()); diff != "" {
		t.Fatalf("IDs (-want, +got):\n%s", diff)
	}

	if _, ok := lexicon.Get[record](s, "zh", "爱"); ok {
		t.Fatal("Get before load: want miss")
	}
	if err := s.EnsureLoaded(context.Background(), "zh"); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	state, err := s.State("zh")
	if err != nil || state != lexicon.Loaded {
		t.Fatalf("State: want %v, got %v (%v)", lexicon.Loaded, state, err)
	}

	got, ok := lexicon.Get[record](s, "zh", "爱")
	if !ok {
		t.Fatal("Get: want hit")
	}
	if diff := cmp.Diff(records["爱"], got); diff != "" {
		t.Fatalf("Get (-want, +got):\n%s", diff)
	}

	// Wrong record type or unknown lexicon are misses.
	if _, ok := lexicon.Get[string](s, "zh", "爱"); ok {
		t.Fatal("Get wrong type: want miss")
	}
	if _, ok := lexicon.Get[record](s, "ko", "爱"); ok {
		t.Fatal("Get unknown: want miss")
	}

	if err := s.EnsureLoaded(context.Background(), "ko"); !errors.Is(err, lexicon.ErrUnknownLexicon) {
		t.Fatalf("EnsureLoaded unknown: want %v, got %v", lexicon.ErrUnknownLexicon, err)
	}
	if _, err := s.State("ko"); !errors.Is(err, lexicon.ErrUnknownLexicon) {
		t.Fatalf("State unknown: want %v, got %v", lexicon.ErrUnknownLexicon, err)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	got := []string{
		lexicon.Unloaded.String(),
		lexicon.Loading.String(),
		lexicon.Loaded.String(),
		lexicon.Failed.String(),
		lexicon.State(9).String(),
	}
	want := []string{"unloaded", "loading", "loaded", "failed", "State(9)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("String (-want, +got):\n%s", diff)
	}
}

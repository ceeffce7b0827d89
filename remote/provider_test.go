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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cjkdict/entry"
)

func TestJisho_Lookup(t *testing.T) {
	t.Parallel()

	body := `{"meta":{"status":200},"data":[
		{"slug":"食べ物","japanese":[{"word":"食べ物","reading":"たべもの"}],
		 "senses":[{"english_definitions":["food"],"parts_of_speech":["Noun"]}],"jlpt":["jlpt-n5"]},
		{"slug":"食べる","is_common":true,"japanese":[{"word":"食べる","reading":"たべる"}],
		 "senses":[
			{"english_definitions":["to eat"],"parts_of_speech":["Ichidan verb","Transitive verb"]},
			{"english_definitions":["to live on (e.g. a salary)","to live off"],"parts_of_speech":[],"info":["colloquial"]}
		 ],"jlpt":["jlpt-n5","jlpt-n4"]}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/search/words" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("keyword"); got != "食べる" {
			t.Errorf("unexpected keyword: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	got, err := NewJisho(srv.URL, srv.Client()).Lookup(context.Background(), "食べる")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	want := &entry.Entry{
		Canonical: "食べる",
		Reading:   "たべる",
		Definitions: []entry.Definition{
			{Meaning: "to eat", PartOfSpeech: "Ichidan verb, Transitive verb"},
			{Meaning: "to live on (e.g. a salary); to live off"},
		},
		GrammarNotes: "colloquial",
		Level:        5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}
}

func TestJisho_Lookup_miss(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"meta":{"status":200},"data":[]}`))
	}))
	defer srv.Close()

	got, err := NewJisho(srv.URL, srv.Client()).Lookup(context.Background(), "ぬぬぬ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != nil {
		t.Fatalf("Lookup: want nil, got %+v", got)
	}
}

func TestJisho_Lookup_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		is     error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", is: ErrUnexpectedStatus},
		{name: "malformed", status: http.StatusOK, body: "{not json"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			}))
			defer srv.Close()

			got, err := NewJisho(srv.URL, srv.Client()).Lookup(context.Background(), "猫")
			if err == nil {
				t.Fatalf("Lookup: want error, got %+v", got)
			}
			if test.is != nil && !errors.Is(err, test.is) {
				t.Fatalf("Lookup: want %v, got %v", test.is, err)
			}
		})
	}
}

func TestWiktionary_Lookup(t *testing.T) {
	t.Parallel()

	body := `{
		"ko":[{"partOfSpeech":"Noun","language":"Korean","definitions":[
			{"definition":"<a href=\"/wiki/school\">school</a>","examples":["<b>학교</b>에 가요."]},
			{"definition":""}
		]}],
		"en":[{"partOfSpeech":"Noun","language":"English","definitions":[{"definition":"unrelated"}]}]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page/definition/학교":
			_, _ = w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewWiktionary(srv.URL, "ko", srv.Client())

	got, err := p.Lookup(context.Background(), "학교")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	want := &entry.Entry{
		Canonical:   "학교",
		Definitions: []entry.Definition{{Meaning: `<a href="/wiki/school">school</a>`, PartOfSpeech: "noun"}},
		Examples:    []string{"<b>학교</b>에 가요."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Lookup (-want, +got):\n%s", diff)
	}

	missing, err := p.Lookup(context.Background(), "없는말")
	if err != nil {
		t.Fatalf("Lookup missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("Lookup missing: want nil, got %+v", missing)
	}

	other, err := NewWiktionary(srv.URL, "ja", srv.Client()).Lookup(context.Background(), "학교")
	if err != nil {
		t.Fatalf("Lookup other language: %v", err)
	}
	if other != nil {
		t.Fatalf("Lookup other language: want nil, got %+v", other)
	}
}

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
	"net/http"
	"net/url"
	"strings"

	"github.com/ianlewis/go-cjkdict/entry"
)

// DefaultJishoURL is the base URL of the Jisho API.
const DefaultJishoURL = "https://jisho.org"

// Jisho looks up Japanese words with the Jisho search API.
type Jisho struct {
	BaseURL string
	Client  *http.Client
}

// NewJisho returns a Jisho provider. An empty baseURL means DefaultJishoURL.
func NewJisho(baseURL string, client *http.Client) *Jisho {
	if baseURL == "" {
		baseURL = DefaultJishoURL
	}
	return &Jisho{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  defaultClient(client),
	}
}

// Name implements [Provider.Name].
func (*Jisho) Name() string {
	return "jisho"
}

// Lookup implements [Provider.Lookup]. When the search returns several
// words the one whose headword or reading equals word is preferred.
func (j *Jisho) Lookup(ctx context.Context, word string) (*entry.Entry, error) {
	u := j.BaseURL + "/api/v1/search/words?keyword=" + url.QueryEscape(word)

	var resp jishoResponse
	found, err := getJSON(ctx, defaultClient(j.Client), u, &resp)
	if err != nil {
		return nil, fmt.Errorf("jisho: %w", err)
	}
	if !found || len(resp.Data) == 0 {
		return nil, nil
	}

	best := resp.Data[0]
	for _, d := range resp.Data {
		if d.matches(word) {
			best = d
			break
		}
	}
	return best.entry(), nil
}

func (w jishoWord) matches(word string) bool {
	if w.Slug == word {
		return true
	}
	for _, j := range w.Japanese {
		if j.Word == word || j.Reading == word {
			return true
		}
	}
	return false
}

func (w jishoWord) entry() *entry.Entry {
	e := &entry.Entry{}
	if len(w.Japanese) > 0 {
		e.Canonical = w.Japanese[0].Word
		if e.Canonical == "" {
			e.Canonical = w.Japanese[0].Reading
		}
		e.Reading = w.Japanese[0].Reading
	}
	var notes []string
	for _, s := range w.Senses {
		meaning := strings.Join(s.EnglishDefinitions, "; ")
		if meaning == "" {
			continue
		}
		e.Definitions = append(e.Definitions, entry.Definition{
			Meaning:      meaning,
			PartOfSpeech: strings.Join(s.PartsOfSpeech, ", "),
		})
		notes = append(notes, s.Info...)
	}
	e.GrammarNotes = strings.Join(notes, "; ")
	// The highest listed JLPT level is the easiest.
	for _, l := range w.JLPT {
		e.Level = max(e.Level, int(l))
	}
	return e
}

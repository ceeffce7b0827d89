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

// DefaultWiktionaryURL is the base URL of the English Wiktionary REST API.
const DefaultWiktionaryURL = "https://en.wiktionary.org/api/rest_v1"

// Wiktionary looks up words with the Wiktionary REST definition endpoint.
// Definitions are returned as HTML.
type Wiktionary struct {
	BaseURL string
	// Language is the language code of the section to read (e.g. "ko").
	Language string
	Client   *http.Client
}

// NewWiktionary returns a Wiktionary provider for the given language code.
// An empty baseURL means DefaultWiktionaryURL.
func NewWiktionary(baseURL, language string, client *http.Client) *Wiktionary {
	if baseURL == "" {
		baseURL = DefaultWiktionaryURL
	}
	return &Wiktionary{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		Language: language,
		Client:   defaultClient(client),
	}
}

// Name implements [Provider.Name].
func (*Wiktionary) Name() string {
	return "wiktionary"
}

// Lookup implements [Provider.Lookup].
func (w *Wiktionary) Lookup(ctx context.Context, word string) (*entry.Entry, error) {
	u := w.BaseURL + "/page/definition/" + url.PathEscape(word)

	var resp wiktionaryResponse
	found, err := getJSON(ctx, defaultClient(w.Client), u, &resp)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: %w", err)
	}
	if !found {
		return nil, nil
	}

	usages := resp[w.Language]
	if len(usages) == 0 {
		return nil, nil
	}

	e := &entry.Entry{Canonical: word}
	for _, u := range usages {
		for _, d := range u.Definitions {
			if strings.TrimSpace(d.Definition) == "" {
				continue
			}
			e.Definitions = append(e.Definitions, entry.Definition{
				Meaning:      d.Definition,
				PartOfSpeech: strings.ToLower(u.PartOfSpeech),
			})
			e.Examples = append(e.Examples, d.Examples...)
		}
	}
	if len(e.Definitions) == 0 {
		return nil, nil
	}
	return e, nil
}

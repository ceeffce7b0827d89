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
	"github.com/ianlewis/go-cjkdict/ja"
)

// Jisho API response types.

type jishoResponse struct {
	Data []jishoWord `json:"data"`
}

type jishoWord struct {
	Slug     string          `json:"slug"`
	IsCommon bool            `json:"is_common"`
	JLPT     []ja.JLPT       `json:"jlpt"`
	Japanese []jishoJapanese `json:"japanese"`
	Senses   []jishoSense    `json:"senses"`
}

type jishoJapanese struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

type jishoSense struct {
	EnglishDefinitions []string `json:"english_definitions"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
	Info               []string `json:"info"`
}

// Wiktionary REST definition response types. The response is keyed by
// language code.

type wiktionaryResponse map[string][]wiktionaryUsage

type wiktionaryUsage struct {
	PartOfSpeech string                 `json:"partOfSpeech"`
	Language     string                 `json:"language"`
	Definitions  []wiktionaryDefinition `json:"definitions"`
}

type wiktionaryDefinition struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

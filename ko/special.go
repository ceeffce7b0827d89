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

package ko

import (
	"github.com/ianlewis/go-cjkdict/entry"
)

func copula(meaning string, f entry.Formality) entry.Entry {
	return entry.Entry{
		Definitions: []entry.Definition{{Meaning: meaning, PartOfSpeech: "copula"}},
		Formality:   f,
	}
}

// Specials are copulas that resolve before any lexicon lookup, plus every
// default particle. Matches are exact.
var Specials = buildSpecials()

func buildSpecials() map[string]entry.Entry {
	m := map[string]entry.Entry{
		"입니다":  copula("to be", entry.Formal),
		"입니까":  copula("is it?", entry.Formal),
		"이에요":  copula("to be", entry.Polite),
		"예요":   copula("to be", entry.Polite),
		"이다":   copula("to be", entry.Casual),
		"이야":   copula("to be", entry.Casual),
		"아니다":  copula("to not be", entry.Casual),
		"아니에요": copula("to not be", entry.Polite),
	}
	for _, p := range DefaultParticles {
		m[p.Text] = entry.Entry{
			Reading:     p.Text,
			Definitions: []entry.Definition{{Meaning: p.Definition, PartOfSpeech: "particle"}},
		}
	}
	return m
}

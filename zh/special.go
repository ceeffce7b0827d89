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

package zh

import (
	"github.com/ianlewis/go-cjkdict/entry"
)

func particle(pinyin, meaning, notes string) entry.Entry {
	return entry.Entry{
		Reading:      pinyin,
		Definitions:  []entry.Definition{{Meaning: meaning, PartOfSpeech: "particle"}},
		GrammarNotes: notes,
	}
}

// Specials are structural particles and the copula, which resolve before
// any lexicon lookup. Matches are exact.
var Specials = map[string]entry.Entry{
	"的": particle("de", "possessive or attributive marker", "Links a modifier to the noun it describes."),
	"地": particle("de", "adverbial marker", "Turns the preceding phrase into an adverb."),
	"得": particle("de", "complement marker", "Introduces a complement of degree or result."),
	"了": particle("le", "completed action marker", "After a verb marks completion; at sentence end marks a change of state."),
	"着": particle("zhe", "continuous aspect marker", ""),
	"过": particle("guo", "experiential aspect marker", "Marks that something has been experienced."),
	"吗": particle("ma", "question marker", "Turns a statement into a yes/no question."),
	"呢": particle("ne", "follow-up question marker", ""),
	"吧": particle("ba", "suggestion marker", "Softens a statement or makes a suggestion."),
	"啊": particle("a", "exclamation marker", ""),
	"是": {
		Reading:     "shì",
		Definitions: []entry.Definition{{Meaning: "to be", PartOfSpeech: "copula"}},
	},
}

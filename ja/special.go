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

package ja

import (
	"github.com/ianlewis/go-cjkdict/entry"
)

func particle(reading, meaning, notes string) entry.Entry {
	return entry.Entry{
		Reading:      reading,
		Definitions:  []entry.Definition{{Meaning: meaning, PartOfSpeech: "particle"}},
		GrammarNotes: notes,
	}
}

func copula(reading, meaning string, f entry.Formality) entry.Entry {
	return entry.Entry{
		Reading:     reading,
		Definitions: []entry.Definition{{Meaning: meaning, PartOfSpeech: "copula"}},
		Formality:   f,
	}
}

// Specials are particles and copulas that resolve before any lexicon
// lookup. Matches are exact.
var Specials = map[string]entry.Entry{
	"は":   particle("わ", "topic marker", "Marks the topic of the sentence; pronounced wa."),
	"が":   particle("が", "subject marker", "Marks the grammatical subject."),
	"を":   particle("を", "object marker", "Marks the direct object; pronounced o."),
	"に":   particle("に", "at; to; in", "Marks a target, location of existence or point in time."),
	"で":   particle("で", "at; by means of", "Marks the location of an action or a means."),
	"へ":   particle("え", "toward", "Marks a direction; pronounced e."),
	"と":   particle("と", "and; with", "Joins nouns exhaustively or marks a companion."),
	"も":   particle("も", "also; too", ""),
	"の":   particle("の", "possessive marker", "Links nouns; of, 's."),
	"から":  particle("から", "from; because", ""),
	"まで":  particle("まで", "until; as far as", ""),
	"より":  particle("より", "than; from", ""),
	"や":   particle("や", "and (non-exhaustive)", ""),
	"か":   particle("か", "question marker", "Sentence-final question particle."),
	"ね":   particle("ね", "right?; isn't it", "Sentence-final particle seeking agreement."),
	"よ":   particle("よ", "emphasis", "Sentence-final particle asserting new information."),
	"です":  copula("です", "to be", entry.Polite),
	"でした": copula("でした", "was", entry.Polite),
	"だ":   copula("だ", "to be", entry.Casual),
	"だった": copula("だった", "was", entry.Casual),
	"である": copula("である", "to be", entry.Formal),
}

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
	"strings"
)

// Rule rewrites a conjugated surface form into a dictionary form
// candidate.
type Rule struct {
	// Name is reported as the conjugation type when the rule resolves a
	// word.
	Name string

	// Apply returns the candidate dictionary form, or false if the rule
	// does not apply to word.
	Apply func(word string) (string, bool)
}

// SuffixRule replaces a trailing from with to. The remaining stem must be
// non-empty.
func SuffixRule(name, from, to string) Rule {
	return Rule{
		Name: name,
		Apply: func(word string) (string, bool) {
			stem, ok := strings.CutSuffix(word, from)
			if !ok || stem == "" {
				return "", false
			}
			return stem + to, true
		},
	}
}

// godanStems maps the i-row kana of a godan continuative stem to the u-row
// dictionary ending, in rule order.
var godanStems = [][2]string{
	{"き", "く"},
	{"ぎ", "ぐ"},
	{"し", "す"},
	{"ち", "つ"},
	{"に", "ぬ"},
	{"び", "ぶ"},
	{"み", "む"},
	{"り", "る"},
	{"い", "う"},
}

// Rules is the ordered rule chain. The first rule producing a lexicon hit
// wins; there is no scoring between rules.
var Rules = buildRules()

func buildRules() []Rule {
	rules := []Rule{
		SuffixRule("masu-form", "ます", "る"),
		SuffixRule("te-form", "て", "る"),
		SuffixRule("ta-form", "た", "る"),
	}
	for _, gs := range godanStems {
		rules = append(rules, SuffixRule("godan-stem", gs[0], gs[1]))
	}
	rules = append(rules,
		Rule{
			Name: "ichidan-stem",
			Apply: func(word string) (string, bool) {
				if word == "" {
					return "", false
				}
				return word + "る", true
			},
		},
		SuffixRule("polite-past", "ました", "る"),
		SuffixRule("polite-negative", "ません", "る"),
		SuffixRule("negative", "ない", "る"),
		SuffixRule("desiderative", "たい", "る"),
	)
	return rules
}

// Deinflection is the result of a successful rule match.
type Deinflection struct {
	DictionaryForm  string
	ConjugatedForm  string
	ConjugationType string
}

// Deinflect applies rules in order and returns the first candidate for which
// has reports true.
func Deinflect(word string, has func(string) bool, rules []Rule) (Deinflection, bool) {
	for _, r := range rules {
		candidate, ok := r.Apply(word)
		if !ok || candidate == word {
			continue
		}
		if has(candidate) {
			return Deinflection{
				DictionaryForm:  candidate,
				ConjugatedForm:  word,
				ConjugationType: r.Name,
			}, true
		}
	}
	return Deinflection{}, false
}

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

package cjkdict

import (
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-cjkdict/ko"
)

// isPunctuation reports whether s has no letters or digits.
func isPunctuation(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func isKatakana(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.Katakana, r) && r != 'ー' {
			return false
		}
	}
	return s != ""
}

// hint guesses why word was not found.
func hint(word string, lang Language) string {
	n := utf8.RuneCountInString(word)
	switch {
	case word == "":
		return "empty input"
	case isPunctuation(word):
		return "punctuation or symbols"
	case isLatin(word) && lang != Korean:
		return "not written in " + lang.name()
	}

	switch lang {
	case Korean:
		if h := ko.Hint(word); h != "" {
			return h
		}
	case Japanese:
		if isKatakana(word) {
			return "likely a loanword or proper noun"
		}
	case Chinese:
		if n >= 4 {
			return "likely a phrase or idiom; try segmenting it"
		}
	}

	if n >= 6 {
		return "long phrase; try segmenting it"
	}
	return "not found in any dictionary"
}

func (l Language) name() string {
	switch l {
	case Chinese:
		return "Chinese"
	case Japanese:
		return "Japanese"
	case Korean:
		return "Korean"
	}
	return string(l)
}

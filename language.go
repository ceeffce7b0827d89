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
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned for languages other than Chinese,
// Japanese and Korean.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a language code.
type Language string

const (
	// Chinese is Mandarin Chinese.
	Chinese Language = "zh"

	// Japanese is Japanese.
	Japanese Language = "ja"

	// Korean is Korean.
	Korean Language = "ko"
)

// Languages lists the supported languages.
var Languages = []Language{Chinese, Japanese, Korean}

// ParseLanguage parses a language code or English language name.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zh", "zh-cn", "cmn", "chinese", "mandarin":
		return Chinese, nil
	case "ja", "jp", "japanese":
		return Japanese, nil
	case "ko", "kr", "korean":
		return Korean, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case Chinese, Japanese, Korean:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (l Language) String() string {
	return string(l)
}

func (l Language) examplesID() string {
	return string(l) + "-examples"
}

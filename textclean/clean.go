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

// Package textclean turns markup from remote dictionary providers into
// plain text.
package textclean

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/k3a/html2text"

	"github.com/ianlewis/go-cjkdict/internal/folding"
)

var (
	emptyGroup     = regexp.MustCompile(`\(\s*\)|（\s*）|\[\s*\]`)
	spaceBeforePun = regexp.MustCompile(`\s+([,.;:!?、。])`)
)

// blockElements get a trailing space so that adjacent blocks do not run
// together once tags are removed.
const blockElements = "br, p, div, li, dd, dt, tr, td, th, h1, h2, h3, h4, h5, h6"

// Clean strips markup tags, decodes entities, removes parenthetical groups
// left empty by stripped annotations and folds whitespace. Clean never
// panics; if structured parsing fails it falls back to [Strip].
func Clean(markup string) string {
	if markup == "" {
		return ""
	}
	text, ok := parse(markup)
	if !ok {
		text = Strip(markup)
	}
	return tidy(text)
}

// Strip removes tags and decodes entities without building a document tree.
func Strip(markup string) string {
	return html2text.HTML2Text(markup)
}

func parse(markup string) (text string, ok bool) {
	if !strings.ContainsAny(markup, "<&") {
		return markup, true
	}
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", false
	}
	doc.Find("script, style").Remove()
	doc.Find(blockElements).AfterHtml(" ")
	return doc.Text(), true
}

func tidy(text string) string {
	for {
		next := emptyGroup.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}
	text = folding.Whitespace(text)
	return spaceBeforePun.ReplaceAllString(text, "$1")
}

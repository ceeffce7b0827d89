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

package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// KeyFolder returns a transformer that normalizes a lookup key: full-width
// Latin and half-width katakana are folded to their canonical widths, case is
// folded and whitespace is folded.
func KeyFolder() transform.Transformer {
	return transform.Chain(width.Fold, cases.Fold(), &WhitespaceFolder{})
}

// Key folds s with [KeyFolder]. On error s is returned unchanged.
func Key(s string) string {
	out, _, err := transform.String(KeyFolder(), s)
	if err != nil {
		return s
	}
	return out
}

// Width folds only character width, leaving case intact. It is used on
// user-supplied words before lexicon lookup.
func Width(s string) string {
	return width.Fold.String(s)
}

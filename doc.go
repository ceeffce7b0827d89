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

// Package cjkdict segments Chinese, Japanese and Korean text into words and
// resolves each word to a dictionary entry.
//
// Resolution tries, in order:
//  1. A table of particles and copulas.
//  2. For Korean, verb ending and particle detection, which yields
//     candidate dictionary forms.
//  3. The language's lexicon, loaded lazily on first use.
//  4. For Japanese, conjugation rules that rewrite the word to a dictionary
//     form found in the lexicon.
//  5. Remote dictionary services.
//
// When every step misses, Resolve returns a not-found result with a hint.
// Resolve never returns an error.
package cjkdict

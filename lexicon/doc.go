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

// Package lexicon implements lazily loaded, memoized word lexicons.
//
// A lexicon payload is a single JSON object mapping a surface word to a
// compact record:
//
//	{"食べる": {"reading": "たべる", "senses": [{"gloss": ["to eat"]}]}}
//
// The payload is produced offline and treated as an opaque artifact. It may
// be stored as plain JSON, gzip (.json.gz) or dictzip (.json.dz).
//
// Each lexicon moves through the states Unloaded, Loading, Loaded and
// Failed. Only one load is in flight per lexicon at a time; concurrent
// callers wait on the same load. A failed load may be retried by the next
// caller. Once loaded, the data is kept for the lifetime of the lexicon and
// is never mutated, so concurrent readers need no locking.
package lexicon

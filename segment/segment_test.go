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

package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	var b Builder
	b.Add("학교", false)
	b.Add("", false)
	b.Add("에서", true)
	b.Add(" ", false)
	b.Add("공부", false)

	want := []Word{
		{Text: "학교", Start: 0, End: 2},
		{Text: "에서", Start: 2, End: 4, Particle: true},
		{Text: " ", Start: 4, End: 5},
		{Text: "공부", Start: 5, End: 7},
	}
	if diff := cmp.Diff(want, b.Words()); diff != "" {
		t.Fatalf("Words (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("학교에서 공부", Join(b.Words())); diff != "" {
		t.Fatalf("Join (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"학교", "에서", "공부"}, Texts(Lexical(b.Words()))); diff != "" {
		t.Fatalf("Lexical (-want, +got):\n%s", diff)
	}
}

func TestWhole(t *testing.T) {
	t.Parallel()

	if got := Whole(""); got != nil {
		t.Fatalf("Whole empty: want nil, got %v", got)
	}
	want := []Word{{Text: "漢字", Start: 0, End: 2}}
	if diff := cmp.Diff(want, Whole("漢字")); diff != "" {
		t.Fatalf("Whole (-want, +got):\n%s", diff)
	}
}

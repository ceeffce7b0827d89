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

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeData(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"ja.json": `{"食べる":{"reading":"たべる","senses":[{"gloss":["to eat"],"pos":["v1"]}]}}`,
		"ko.json": `{"학교":{"r":"hakgyo","d":"school","p":"noun"}}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newCjkutilApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"cjkutil"}, args...))
	return out.String(), err
}

func TestLookup(t *testing.T) {
	t.Parallel()

	dir := writeData(t)
	out, err := run(t, "--data-dir", dir, "--offline", "lookup", "--lang", "ja", "食べて")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	for _, want := range []string{"食べる [たべる] (morphology)", "1. (v1) to eat", "te-form of 食べる"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLookup_json(t *testing.T) {
	t.Parallel()

	dir := writeData(t)
	out, err := run(t, "--data-dir", dir, "--offline", "lookup", "--lang", "ko", "--json", "학교에서")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	for _, want := range []string{`"word": "학교"`, `"particle": "에서"`, `"found": true`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLookup_notFound(t *testing.T) {
	t.Parallel()

	dir := writeData(t)
	out, err := run(t, "--data-dir", dir, "--offline", "lookup", "--lang", "ko", "김민수")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if want := "김민수: not found (likely a proper noun (Korean name))"; !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func TestSegment(t *testing.T) {
	t.Parallel()

	dir := writeData(t)
	out, err := run(t, "--data-dir", dir, "--offline", "segment", "--lang", "ko", "--resolve", "학교에서")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	for _, want := range []string{"학교", "에서", "school"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLexicons(t *testing.T) {
	t.Parallel()

	dir := writeData(t)
	out, err := run(t, "--data-dir", dir, "--offline", "lexicons", "--load")
	if err != nil {
		t.Fatalf("lexicons: %v", err)
	}
	for _, want := range []string{"ja", "ko", "zh", "loaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBadLanguage(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--offline", "lookup", "--lang", "fr", "mot")
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("lookup: want %v, got %v", ErrFlagParse, err)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out == "" {
		t.Fatal("version: no output")
	}
}

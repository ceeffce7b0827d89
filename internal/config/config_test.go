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

package config

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-cjkdict/lexicon"
	"github.com/ianlewis/go-cjkdict/remote"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		Data: DataConfig{Ext: ".json.gz", ExampleLimit: 3},
		Remote: RemoteConfig{
			Timeout:       6 * time.Second,
			CacheSize:     512,
			JishoURL:      remote.DefaultJishoURL,
			WiktionaryURL: remote.DefaultWiktionaryURL,
		},
		Segment: SegmentConfig{MaxWordLen: 8},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_yaml(t *testing.T) {
	path := writeYAML(t, `
data:
  dir: /usr/share/cjkdict
  example_limit: 5
remote:
  disabled: true
  timeout: 7s
segment:
  max_word_len: 6
  preserve_ending_order: true
log:
  debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Dir != "/usr/share/cjkdict" {
		t.Errorf("Data.Dir = %q", cfg.Data.Dir)
	}
	if cfg.Data.ExampleLimit != 5 {
		t.Errorf("Data.ExampleLimit = %d, want 5", cfg.Data.ExampleLimit)
	}
	if !cfg.Remote.Disabled {
		t.Error("Remote.Disabled = false, want true")
	}
	if cfg.Remote.Timeout != 7*time.Second {
		t.Errorf("Remote.Timeout = %s, want 7s", cfg.Remote.Timeout)
	}
	if cfg.Segment.MaxWordLen != 6 || !cfg.Segment.PreserveEndingOrder {
		t.Errorf("Segment = %+v", cfg.Segment)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug = false, want true")
	}
}

func TestLoad_envOverridesYAML(t *testing.T) {
	path := writeYAML(t, "remote:\n  timeout: 7s\n")
	t.Setenv("CJKDICT_REMOTE_TIMEOUT", "5s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.Timeout != 5*time.Second {
		t.Fatalf("Remote.Timeout = %s, want 5s", cfg.Remote.Timeout)
	}
}

func TestLoad_invalid(t *testing.T) {
	path := writeYAML(t, "remote:\n  timeout: 30s\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load: want %v, got %v", ErrInvalid, err)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load: want error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Remote:  RemoteConfig{Timeout: 6 * time.Second, CacheSize: 1},
			Segment: SegmentConfig{MaxWordLen: 8},
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{name: "valid", modify: func(*Config) {}, valid: true},
		{name: "min timeout", modify: func(c *Config) { c.Remote.Timeout = 5 * time.Second }, valid: true},
		{name: "max timeout", modify: func(c *Config) { c.Remote.Timeout = 8 * time.Second }, valid: true},
		{name: "short timeout", modify: func(c *Config) { c.Remote.Timeout = time.Second }},
		{name: "long timeout", modify: func(c *Config) { c.Remote.Timeout = 9 * time.Second }},
		{name: "cache size", modify: func(c *Config) { c.Remote.CacheSize = 0 }},
		{name: "max word len", modify: func(c *Config) { c.Segment.MaxWordLen = 0 }},
		{name: "example limit", modify: func(c *Config) { c.Data.ExampleLimit = -1 }},
		{name: "dir and url", modify: func(c *Config) { c.Data.Dir, c.Data.URL = "/data", "https://example.com" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			test.modify(&c)
			err := c.Validate()
			if test.valid && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !test.valid && !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate: want %v, got %v", ErrInvalid, err)
			}
		})
	}
}

func TestConfig_EngineOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ja.json"), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		Data:    DataConfig{Dir: dir, ExampleLimit: 2},
		Remote:  RemoteConfig{Timeout: 6 * time.Second, CacheSize: 10},
		Segment: SegmentConfig{MaxWordLen: 8},
	}
	opts := cfg.EngineOptions(http.DefaultClient)

	if f, ok := opts.Japanese.Lexicon.(*lexicon.FileSource); !ok || f.Path != filepath.Join(dir, "ja.json") {
		t.Fatalf("Japanese.Lexicon = %#v", opts.Japanese.Lexicon)
	}
	if opts.Korean.Lexicon != nil {
		t.Fatalf("Korean.Lexicon = %#v, want nil", opts.Korean.Lexicon)
	}
	if opts.Japanese.Examples != nil {
		t.Fatalf("Japanese.Examples = %#v, want nil", opts.Japanese.Examples)
	}

	var names []string
	for _, p := range opts.Japanese.Remote {
		names = append(names, p.Name())
	}
	if diff := cmp.Diff([]string{"jisho", "wiktionary"}, names); diff != "" {
		t.Fatalf("Japanese.Remote (-want, +got):\n%s", diff)
	}
	if n := len(opts.Korean.Remote); n != 1 {
		t.Fatalf("len(Korean.Remote) = %d, want 1", n)
	}
	if opts.ExampleLimit != 2 || opts.RemoteTimeout != 6*time.Second || opts.CacheSize != 10 {
		t.Fatalf("EngineOptions = %+v", opts)
	}
}

func TestConfig_EngineOptions_url(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Data:   DataConfig{URL: "https://example.com/data/", Ext: ".json.gz"},
		Remote: RemoteConfig{Disabled: true},
	}
	opts := cfg.EngineOptions(nil)

	src, ok := opts.Korean.Lexicon.(*lexicon.HTTPSource)
	if !ok {
		t.Fatalf("Korean.Lexicon = %#v", opts.Korean.Lexicon)
	}
	if want := "https://example.com/data/ko.json.gz"; src.URL != want {
		t.Fatalf("URL = %q, want %q", src.URL, want)
	}
	if opts.Korean.Remote != nil {
		t.Fatalf("Korean.Remote = %v, want nil", opts.Korean.Remote)
	}
}

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
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-cjkdict"
	"github.com/ianlewis/go-cjkdict/lexicon"
	"github.com/ianlewis/go-cjkdict/remote"
)

// EngineOptions builds engine options from the configuration. client is
// used for every HTTP request; nil means a default client.
func (c *Config) EngineOptions(client *http.Client) *cjkdict.Options {
	if client == nil {
		client = &http.Client{}
	}
	opts := &cjkdict.Options{
		MaxWordLen:          c.Segment.MaxWordLen,
		PreserveEndingOrder: c.Segment.PreserveEndingOrder,
		RemoteTimeout:       c.Remote.Timeout,
		CacheSize:           c.Remote.CacheSize,
		ExampleLimit:        c.Data.ExampleLimit,
	}

	for _, lang := range cjkdict.Languages {
		lo := cjkdict.LanguageOptions{
			Lexicon:  c.source(string(lang), client),
			Examples: c.source(string(lang)+"-examples", client),
		}
		if !c.Remote.Disabled {
			lo.Remote = c.providers(lang, client)
		}
		switch lang {
		case cjkdict.Chinese:
			opts.Chinese = lo
		case cjkdict.Japanese:
			opts.Japanese = lo
		case cjkdict.Korean:
			opts.Korean = lo
		}
	}
	return opts
}

// source returns the source for the named data file, or nil when no data
// location is configured or the file does not exist.
func (c *Config) source(name string, client *http.Client) lexicon.Source {
	switch {
	case c.Data.URL != "":
		return &lexicon.HTTPSource{
			URL:    strings.TrimSuffix(c.Data.URL, "/") + "/" + name + c.Data.Ext,
			Client: client,
		}
	case c.Data.Dir != "":
		// A nil *FileSource must not become a non-nil Source.
		if f := lexicon.FindFile(filepath.Join(c.Data.Dir, name)); f != nil {
			return f
		}
	}
	return nil
}

func (c *Config) providers(lang cjkdict.Language, client *http.Client) []remote.Provider {
	var ps []remote.Provider
	if lang == cjkdict.Japanese {
		ps = append(ps, remote.NewJisho(c.Remote.JishoURL, client))
	}
	return append(ps, remote.NewWiktionary(c.Remote.WiktionaryURL, string(lang), client))
}

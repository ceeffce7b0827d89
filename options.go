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
	"time"

	"go.uber.org/zap"

	"github.com/ianlewis/go-cjkdict/ko"
	"github.com/ianlewis/go-cjkdict/lexicon"
	"github.com/ianlewis/go-cjkdict/remote"
)

// LanguageOptions configures the data used for one language.
type LanguageOptions struct {
	// Lexicon is the source of the language's lexicon. A nil source means
	// an empty lexicon.
	Lexicon lexicon.Source

	// Examples is the source of the example sentence index. Nil disables
	// examples.
	Examples lexicon.Source

	// Remote lists fallback providers in priority order.
	Remote []remote.Provider
}

// Options are options for an Engine.
type Options struct {
	Chinese  LanguageOptions
	Japanese LanguageOptions
	Korean   LanguageOptions

	// MaxWordLen is the longest Chinese word tried by the segmenter. Zero
	// means zh.DefaultMaxWordLen.
	MaxWordLen int

	// Particles overrides ko.DefaultParticles.
	Particles []ko.Particle

	// PreserveEndingOrder checks Korean verb endings in declaration order
	// instead of longest first.
	PreserveEndingOrder bool

	// RemoteTimeout bounds each remote provider call. Zero means
	// remote.DefaultTimeout.
	RemoteTimeout time.Duration

	// CacheSize is the size of each remote result cache. Zero means
	// remote.DefaultCacheSize.
	CacheSize int

	// ExampleLimit caps the examples attached to a result. Zero means
	// examples.DefaultLimit.
	ExampleLimit int

	Logger *zap.SugaredLogger
}

func (o *Options) language(l Language) LanguageOptions {
	switch l {
	case Chinese:
		return o.Chinese
	case Japanese:
		return o.Japanese
	case Korean:
		return o.Korean
	}
	return LanguageOptions{}
}

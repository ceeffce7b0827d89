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

// Package config loads the engine configuration from a YAML file and the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Remote  RemoteConfig  `yaml:"remote"`
	Segment SegmentConfig `yaml:"segment"`
	Log     LogConfig     `yaml:"log"`
}

// DataConfig locates the lexicon and example files. Files are named after
// the language code, e.g. "ja.json.gz" and "ja-examples.json".
type DataConfig struct {
	Dir          string `yaml:"dir"           env:"CJKDICT_DATA_DIR"`
	URL          string `yaml:"url"           env:"CJKDICT_DATA_URL"`
	Ext          string `yaml:"ext"           env:"CJKDICT_DATA_EXT"           env-default:".json.gz"`
	ExampleLimit int    `yaml:"example_limit" env:"CJKDICT_EXAMPLE_LIMIT"      env-default:"3"`
}

// RemoteConfig configures the remote dictionary services.
type RemoteConfig struct {
	Disabled      bool          `yaml:"disabled"       env:"CJKDICT_REMOTE_DISABLED"`
	Timeout       time.Duration `yaml:"timeout"        env:"CJKDICT_REMOTE_TIMEOUT"        env-default:"6s"`
	CacheSize     int           `yaml:"cache_size"     env:"CJKDICT_REMOTE_CACHE_SIZE"     env-default:"512"`
	JishoURL      string        `yaml:"jisho_url"      env:"CJKDICT_JISHO_URL"             env-default:"https://jisho.org"`
	WiktionaryURL string        `yaml:"wiktionary_url" env:"CJKDICT_WIKTIONARY_URL"        env-default:"https://en.wiktionary.org/api/rest_v1"`
}

// SegmentConfig configures segmentation and morphology.
type SegmentConfig struct {
	MaxWordLen          int  `yaml:"max_word_len"          env:"CJKDICT_MAX_WORD_LEN"          env-default:"8"`
	PreserveEndingOrder bool `yaml:"preserve_ending_order" env:"CJKDICT_PRESERVE_ENDING_ORDER" env-default:"false"`
}

// LogConfig configures logging.
type LogConfig struct {
	Debug bool `yaml:"debug" env:"CJKDICT_DEBUG" env-default:"false"`
}

// Load reads the configuration from path, overridden by environment
// variables. An empty path reads the environment and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

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
	"fmt"
	"time"
)

const (
	// MinRemoteTimeout and MaxRemoteTimeout bound remote.timeout.
	MinRemoteTimeout = 5 * time.Second
	MaxRemoteTimeout = 8 * time.Second
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks value ranges. Load calls it automatically.
func (c *Config) Validate() error {
	if t := c.Remote.Timeout; t < MinRemoteTimeout || t > MaxRemoteTimeout {
		return fmt.Errorf("%w: remote.timeout must be between %s and %s (got %s)",
			ErrInvalid, MinRemoteTimeout, MaxRemoteTimeout, t)
	}
	if c.Remote.CacheSize <= 0 {
		return fmt.Errorf("%w: remote.cache_size must be > 0 (got %d)", ErrInvalid, c.Remote.CacheSize)
	}
	if c.Segment.MaxWordLen <= 0 {
		return fmt.Errorf("%w: segment.max_word_len must be > 0 (got %d)", ErrInvalid, c.Segment.MaxWordLen)
	}
	if c.Data.ExampleLimit < 0 {
		return fmt.Errorf("%w: data.example_limit must be >= 0 (got %d)", ErrInvalid, c.Data.ExampleLimit)
	}
	if c.Data.Dir != "" && c.Data.URL != "" {
		return fmt.Errorf("%w: data.dir and data.url are mutually exclusive", ErrInvalid)
	}
	return nil
}

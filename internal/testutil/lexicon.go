// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil writes lexicon fixtures for tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression selects how a fixture payload is stored.
type Compression int

const (
	// None stores plain JSON.
	None Compression = iota

	// Gzip stores gzip compressed JSON.
	Gzip

	// DictZip stores dictzip compressed JSON.
	DictZip
)

// MakeLexiconOptions are options for WriteLexicon.
type MakeLexiconOptions struct {
	// Ext overrides the file extension. Defaults to '.json', '.json.gz' or
	// '.json.dz' depending on Compression.
	Ext string

	// Compression is the payload compression.
	Compression Compression
}

// GetExt returns the file extension for the options.
func (o *MakeLexiconOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		switch o.Compression {
		case Gzip:
			return ".json.gz"
		case DictZip:
			return ".json.dz"
		}
	}
	return ".json"
}

// MakeLexicon encodes records as a lexicon JSON payload.
func MakeLexicon(t *testing.T, records any) []byte {
	t.Helper()

	b, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// WriteLexicon writes records to a lexicon file named base plus the
// extension chosen by opts inside dir and returns its path.
func WriteLexicon(t *testing.T, dir, base string, records any, opts *MakeLexiconOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeLexiconOptions{}
	}

	path := filepath.Join(dir, base+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	payload := MakeLexicon(t, records)

	switch opts.Compression {
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(payload); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(payload); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(payload); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// CountingSource serves a fixed payload and counts how often it is opened.
// Gate, when non-nil, is received from before each open returns so tests
// can hold loads in flight.
type CountingSource struct {
	Payload []byte
	Err     error
	Gate    chan struct{}

	opens atomic.Int64
}

// Name implements lexicon.Source.
func (s *CountingSource) Name() string {
	return "counting"
}

// Open implements lexicon.Source.
func (s *CountingSource) Open(ctx context.Context) (io.ReadCloser, error) {
	s.opens.Add(1)
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return io.NopCloser(bytes.NewReader(s.Payload)), nil
}

// Opens returns the number of Open calls.
func (s *CountingSource) Opens() int {
	return int(s.opens.Load())
}

// NewCountingSource returns a CountingSource serving records as JSON.
func NewCountingSource(t *testing.T, records any) *CountingSource {
	t.Helper()
	return &CountingSource{Payload: MakeLexicon(t, records)}
}

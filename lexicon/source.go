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

package lexicon

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

var (
	// ErrNotFound indicates that a lexicon payload does not exist.
	ErrNotFound = errors.New("lexicon payload not found")

	// ErrUnexpectedStatus indicates an unexpected HTTP response status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Source provides the raw JSON payload of a lexicon.
type Source interface {
	// Name describes the source for diagnostics.
	Name() string

	// Open returns a reader over the JSON payload. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) (io.ReadCloser, error)

// Name implements [Source.Name].
func (SourceFunc) Name() string {
	return "func"
}

// Open implements [Source.Open].
func (f SourceFunc) Open(ctx context.Context) (io.ReadCloser, error) {
	return f(ctx)
}

// FileSource reads a lexicon from a local file. Files ending in .gz are
// decompressed with gzip and files ending in .dz with dictzip.
type FileSource struct {
	Path string
}

// Name implements [Source.Name].
func (s *FileSource) Name() string {
	return s.Path
}

// Open implements [Source.Open].
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("opening %q: %w", s.Path, err)
	}

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", s.Path, err)
		}
		return &multiCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %q: %w", s.Path, err)
		}
		return &multiCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	default:
		return f, nil
	}
}

// FindFile returns a FileSource for the first existing file among base plus
// each of the known payload extensions, or nil if none exists.
func FindFile(base string) *FileSource {
	exts := []string{
		".json",
		".json.gz",
		".json.dz",
		".JSON",
		".JSON.GZ",
		".JSON.DZ",
	}
	for _, ext := range exts {
		path := base + ext
		if _, err := os.Stat(path); err == nil {
			return &FileSource{Path: path}
		}
	}
	return nil
}

// HTTPSource fetches a lexicon over HTTP with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Name implements [Source.Name].
func (s *HTTPSource) Name() string {
	return s.URL
}

// Open implements [Source.Open].
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.URL, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.URL)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, s.URL)
	}

	if strings.HasSuffix(strings.ToLower(req.URL.Path), ".gz") {
		z, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("reading %s: %w", s.URL, err)
		}
		return &multiCloser{Reader: z, closers: []io.Closer{z, resp.Body}}, nil
	}

	return resp.Body, nil
}

// multiCloser reads from a decompressor and closes it along with the
// underlying reader.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

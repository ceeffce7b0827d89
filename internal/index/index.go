// Copyright 2025 Ian Lewis
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

// Package index implements a read-only sorted secondary index used for
// lookups that do not go through a lexicon's primary key, such as
// romanized spellings.
package index

import (
	"slices"
	"sort"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index. It is safe for concurrent readers.
type Index[V any] struct {
	items []item[V]
	fold  func(string) string
}

// NewIndex creates an index over values. key extracts the indexed string
// from a value and fold normalizes both indexed keys and queries; a nil fold
// indexes keys as is. Values with an empty folded key are skipped.
func NewIndex[V any](values []V, key func(V) string, fold func(string) string) *Index[V] {
	if fold == nil {
		fold = func(s string) string { return s }
	}

	items := make([]item[V], 0, len(values))
	for _, v := range values {
		k := fold(key(v))
		if k == "" {
			continue
		}
		items = append(items, item[V]{key: k, value: v})
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
		fold:  fold,
	}
}

// Len returns the number of indexed values.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search performs a binary search over the index and returns all values
// whose folded key equals the folded query, in insertion order.
func (idx *Index[V]) Search(query string) []V {
	q := idx.fold(query)
	i, found := sort.Find(len(idx.items), func(i int) int {
		return strings.Compare(q, idx.items[i].key)
	})
	if !found {
		return nil
	}

	var result []V
	for j := i; j < len(idx.items) && idx.items[j].key == q; j++ {
		result = append(result, idx.items[j].value)
	}
	return result
}

// Prefix returns up to limit values whose folded key starts with the folded
// query. A limit <= 0 means no limit.
func (idx *Index[V]) Prefix(query string, limit int) []V {
	q := idx.fold(query)
	if q == "" {
		return nil
	}
	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].key >= q
	})

	var result []V
	for j := i; j < len(idx.items) && strings.HasPrefix(idx.items[j].key, q); j++ {
		if limit > 0 && len(result) >= limit {
			break
		}
		result = append(result, idx.items[j].value)
	}
	return result
}

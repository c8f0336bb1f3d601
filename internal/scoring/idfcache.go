// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scoring

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// idfKey is the memoization key: IDF depends only on (field, term) once the
// index is finalized, since both docFreq and totalDocs are frozen.
type idfKey struct {
	field int
	term  string
}

// DefaultIDFCacheSize bounds the memoization table. A few tens of thousands
// of distinct (field, term) pairs comfortably covers a 10^4-document corpus.
const DefaultIDFCacheSize = 65536

// IDFCache memoizes IDF(docFreq, totalDocs) per (field, term) for the life
// of a finalized index. A value, once published, is never rewritten with a
// different one (both inputs are frozen after finalize), so a plain mutex
// around the LRU satisfies the concurrency contract: any synchronization
// that guarantees publish-once-stable is sufficient, including accidental
// duplicate computation from a race.
type IDFCache struct {
	mu    sync.Mutex
	cache *lru.Cache[idfKey, float64]
}

// NewIDFCache creates a cache bounded to size entries.
func NewIDFCache(size int) *IDFCache {
	if size <= 0 {
		size = DefaultIDFCacheSize
	}
	c, _ := lru.New[idfKey, float64](size)
	return &IDFCache{cache: c}
}

// Get returns the cached IDF for (field, term), computing and storing it via
// compute if absent.
func (c *IDFCache) Get(field int, term string, compute func() float64) float64 {
	key := idfKey{field: field, term: term}

	c.mu.Lock()
	if v, ok := c.cache.Get(key); ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	c.cache.Add(key, v)
	c.mu.Unlock()

	return v
}

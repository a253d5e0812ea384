// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package encode

import (
	"github.com/gogpu/ggqr/internal/cache"
)

// CachingEncoder memoizes another encoder. Matrices are immutable, so a
// cached matrix is shared between callers without copying.
type CachingEncoder struct {
	next  Encoder
	cache *cache.Cache[Matrix]
}

// NewCachingEncoder wraps next with an LRU cache holding up to capacity
// matrices per shard. A capacity <= 0 uses cache.DefaultCapacity.
func NewCachingEncoder(next Encoder, capacity int) *CachingEncoder {
	return &CachingEncoder{
		next:  next,
		cache: cache.New[Matrix](capacity),
	}
}

// Encode implements Encoder. Failed encodings are not cached.
func (e *CachingEncoder) Encode(content string, level Level) (Matrix, error) {
	if err := checkInput(content, level); err != nil {
		return Matrix{}, err
	}
	return e.cache.GetOrCreate(level.String()+"\x00"+content, func() (Matrix, error) {
		return e.next.Encode(content, level)
	})
}

// Stats returns the cache statistics.
func (e *CachingEncoder) Stats() cache.Stats {
	return e.cache.Stats()
}

// Reset drops all cached matrices.
func (e *CachingEncoder) Reset() {
	e.cache.Clear()
}

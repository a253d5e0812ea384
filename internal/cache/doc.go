// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a sharded LRU cache keyed by strings.
//
// It backs the caching encoder: module matrices are immutable, so a matrix
// encoded once for a (level, content) pair can be handed to every later
// render of the same content.
//
//	c := cache.New[encode.Matrix](256)
//	m, err := c.GetOrCreate(key, func() (encode.Matrix, error) {
//	    return enc.Encode(content, level)
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation.
package cache

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

import "errors"

var (
	// ErrUnsupportedFormat is returned by Export when the instance's
	// backend cannot produce the requested format. The surface stays valid.
	ErrUnsupportedFormat = errors.New("ggqr: unsupported export format")

	// ErrDestroyed is returned by the error-returning methods of Instance and
	// Element after Destroy. Accessors return zero values instead.
	ErrDestroyed = errors.New("ggqr: instance destroyed")
)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

// Container hosts rendered elements, like a window, a page or a sprite
// sheet. ggqr never creates containers; it appends an element on Mount and
// removes it on Destroy.
type Container interface {
	Append(e *Element) error
	Remove(e *Element) error
}

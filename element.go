// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/ggqr/render"
)

// Element is the rendered surface of an Instance. An instance has exactly
// one Element: UpdateStyle redraws it in place, so a reference taken before
// an update shows the updated contents afterwards.
//
// Like its Instance, an Element must not be used concurrently with
// UpdateStyle.
type Element struct {
	inst *Instance

	mu            sync.Mutex
	width, height int
	css           string
}

func (e *Element) setGeometry(width, height int, css string) {
	e.mu.Lock()
	e.width, e.height, e.css = width, height, css
	e.mu.Unlock()
}

// Kind returns the backend kind behind the element.
func (e *Element) Kind() render.Kind {
	return e.inst.backend.Kind()
}

// Bounds returns the surface rectangle in pixels, or the empty rectangle
// once the instance is destroyed.
func (e *Element) Bounds() image.Rectangle {
	if e.inst.destroyed.Load() {
		return image.Rectangle{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return image.Rect(0, 0, e.width, e.height)
}

// Image returns the surface pixels. The image is owned by the element and
// is redrawn by the next UpdateStyle; copy it to keep a snapshot. Vector
// elements are rasterized on demand.
func (e *Element) Image() (*image.RGBA, error) {
	if e.inst.destroyed.Load() {
		return nil, ErrDestroyed
	}
	ib, ok := e.inst.backend.(render.ImageBackend)
	if !ok {
		return nil, fmt.Errorf("%w: %s element has no pixels", ErrUnsupportedFormat, e.inst.backend.Kind())
	}
	return ib.Image()
}

// Markup returns a copy of the SVG document of a vector element. Other
// kinds fail with ErrUnsupportedFormat.
func (e *Element) Markup() ([]byte, error) {
	if e.inst.destroyed.Load() {
		return nil, ErrDestroyed
	}
	mb, ok := e.inst.backend.(render.MarkupBackend)
	if !ok {
		return nil, fmt.Errorf("%w: %s element has no markup", ErrUnsupportedFormat, e.inst.backend.Kind())
	}
	return bytes.Clone(mb.Markup()), nil
}

// CSSTransform returns the instance transform as a CSS matrix3d() value,
// or "" when the element is drawn untransformed. The transform is already
// applied to the surface; hosts that prefer to transform the element
// themselves can draw it untransformed and use this value instead.
func (e *Element) CSSTransform() string {
	if e.inst.destroyed.Load() {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.css
}

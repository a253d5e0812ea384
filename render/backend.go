// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggqr/style"
)

// ErrUnavailable is returned when a backend kind is not registered or its
// hardware could not be initialized. There is no silent fallback to another
// kind.
var ErrUnavailable = errors.New("render: backend unavailable")

// ErrNotBegun is returned by drawing calls made outside Begin/End.
var ErrNotBegun = errors.New("render: drawing outside Begin/End")

// Kind selects a backend.
type Kind uint8

// Backend kinds.
const (
	KindBitmap Kind = iota
	KindVector
	KindGPU
)

var kindNames = [...]string{KindBitmap: "bitmap", KindVector: "vector", KindGPU: "gpu"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses "bitmap", "vector" or "gpu". "svg" and "canvas" are
// accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "bitmap", "canvas", "raster":
		return KindBitmap, nil
	case "vector", "svg":
		return KindVector, nil
	case "gpu", "webgl":
		return KindGPU, nil
	}
	return 0, fmt.Errorf("render: unknown backend kind %q", s)
}

// Backend is a drawing surface. Calls must be made from one goroutine.
//
// Coordinates passed to FillModules and DrawLogo are surface pixels before
// the transform set with SetTransform.
type Backend interface {
	// Kind returns the backend kind.
	Kind() Kind

	// Begin prepares a width×height surface. If the size is unchanged the
	// existing surface is reused.
	Begin(width, height int) error

	// Clear fills the whole surface with bg, ignoring the transform.
	Clear(bg gg.RGBA)

	// SetTransform sets the transform applied to later drawing.
	SetTransform(m gg.Matrix)

	// FillModules fills path with fill.
	FillModules(path *gg.Path, fill style.Fill) error

	// DrawLogo draws the logo image fitted into its square.
	DrawLogo(op style.LogoOp) error

	// End finishes the frame.
	End() error

	// Close releases the surface. It is safe to call more than once.
	Close() error
}

// ImageBackend is a backend whose surface can be read as pixels. The
// returned image is the same object for the backend's lifetime as long as
// the size does not change.
type ImageBackend interface {
	Backend
	Image() (*image.RGBA, error)
}

// MarkupBackend is a backend that produces SVG markup.
type MarkupBackend interface {
	Backend

	// Markup returns the current document. The slice is reused by the next
	// frame; copy it to keep it.
	Markup() []byte

	// WriteTo writes the current document to w.
	WriteTo(w io.Writer) (int64, error)
}

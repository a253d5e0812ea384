// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vector provides the SVG backend.
//
// Modules become a single <path> per fill. Gradients are emitted as
// <linearGradient> or <radialGradient> definitions in user space, the
// transform as a matrix() on a wrapping group, and the logo as an <image>
// with a PNG data URI.
//
// Image rasterizes the markup on demand with oksvg. oksvg skips <image>
// elements, so the logo is composited onto the rasterized result
// separately.
//
// Importing the package registers render.KindVector:
//
//	import _ "github.com/gogpu/ggqr/render/vector"
package vector

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"reflect"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggqr/internal/svgraster"
	"github.com/gogpu/ggqr/render"
	"github.com/gogpu/ggqr/style"
)

func init() {
	render.Register(render.KindVector, func() (render.Backend, error) {
		return NewBackend(), nil
	})
}

// Backend writes SVG markup into a buffer that is reset, not reallocated,
// on every frame.
type Backend struct {
	buf           bytes.Buffer
	width, height int

	transform gg.Matrix
	groupOpen bool
	gradients int

	drawing bool
	closed  bool

	// Logo state for rasterization.
	logos      []logoDraw
	pngCache   image.Image
	pngEncoded string

	raster *image.RGBA
	stale  bool
}

type logoDraw struct {
	op style.LogoOp
	m  gg.Matrix
}

var (
	_ render.ImageBackend  = (*Backend)(nil)
	_ render.MarkupBackend = (*Backend)(nil)
)

// NewBackend creates an SVG backend.
func NewBackend() *Backend {
	return &Backend{transform: gg.Identity()}
}

// Kind implements render.Backend.
func (b *Backend) Kind() render.Kind {
	return render.KindVector
}

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int) error {
	if b.closed {
		return fmt.Errorf("vector: backend closed")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("vector: invalid size %dx%d", width, height)
	}
	b.buf.Reset()
	b.width, b.height = width, height
	b.transform = gg.Identity()
	b.groupOpen = false
	b.gradients = 0
	b.logos = b.logos[:0]
	b.drawing = true
	b.stale = true

	fmt.Fprintf(&b.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	return nil
}

// Clear implements render.Backend. The background rectangle is emitted
// outside any transform group.
func (b *Backend) Clear(bg gg.RGBA) {
	if !b.drawing {
		return
	}
	b.closeGroup()
	fmt.Fprintf(&b.buf, `<rect x="0" y="0" width="%d" height="%d"%s/>`, b.width, b.height, paintAttrs("fill", bg))
}

// SetTransform implements render.Backend.
func (b *Backend) SetTransform(m gg.Matrix) {
	b.transform = m
	if !b.drawing {
		return
	}
	b.closeGroup()
	if m.IsIdentity() {
		return
	}
	// SVG matrix(a b c d e f) maps x' = a*x + c*y + e, y' = b*x + d*y + f.
	fmt.Fprintf(&b.buf, `<g transform="matrix(%s %s %s %s %s %s)">`,
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
	b.groupOpen = true
}

// FillModules implements render.Backend.
func (b *Backend) FillModules(path *gg.Path, fill style.Fill) error {
	if !b.drawing {
		return render.ErrNotBegun
	}
	if len(path.Elements()) == 0 {
		return nil
	}

	var paint string
	switch fill.Kind {
	case style.LinearFill, style.RadialFill:
		id := b.writeGradient(fill)
		paint = fmt.Sprintf(` fill="url(#%s)"`, id)
	default:
		paint = paintAttrs("fill", fill.Color)
	}

	b.buf.WriteString(`<path fill-rule="nonzero"`)
	b.buf.WriteString(paint)
	b.buf.WriteString(` d="`)
	writePathData(&b.buf, path)
	b.buf.WriteString(`"/>`)
	return nil
}

// DrawLogo implements render.Backend.
func (b *Backend) DrawLogo(op style.LogoOp) error {
	if !b.drawing {
		return render.ErrNotBegun
	}
	if op.Image == nil {
		return nil
	}
	href, err := b.dataURI(op.Image)
	if err != nil {
		return err
	}
	x, y, w, h := op.Fit()
	fmt.Fprintf(&b.buf,
		`<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" href="%s" xlink:href="%s"/>`,
		num(x), num(y), num(w), num(h), href, href)
	b.logos = append(b.logos, logoDraw{op: op, m: b.transform})
	return nil
}

// End implements render.Backend.
func (b *Backend) End() error {
	if !b.drawing {
		return render.ErrNotBegun
	}
	b.closeGroup()
	b.buf.WriteString(`</svg>`)
	b.drawing = false
	return nil
}

// Markup implements render.MarkupBackend.
func (b *Backend) Markup() []byte {
	return b.buf.Bytes()
}

// WriteTo implements render.MarkupBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// Image implements render.ImageBackend. The markup is rasterized on the
// first call after a redraw; the returned image is reused while the size
// stays the same.
func (b *Backend) Image() (*image.RGBA, error) {
	if b.width == 0 || b.drawing {
		return nil, render.ErrNotBegun
	}
	if !b.stale {
		return b.raster, nil
	}
	r := image.Rect(0, 0, b.width, b.height)
	if b.raster == nil || b.raster.Rect != r {
		b.raster = image.NewRGBA(r)
	} else {
		clear(b.raster.Pix)
	}
	if err := svgraster.Render(b.raster, bytes.NewReader(b.buf.Bytes())); err != nil {
		return nil, err
	}
	for _, l := range b.logos {
		render.CompositeLogo(b.raster, l.op, l.m)
	}
	b.stale = false
	return b.raster, nil
}

// Close implements render.Backend.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.drawing = false
	b.buf = bytes.Buffer{}
	b.logos = nil
	b.pngCache = nil
	b.pngEncoded = ""
	b.raster = nil
	return nil
}

func (b *Backend) closeGroup() {
	if b.groupOpen {
		b.buf.WriteString(`</g>`)
		b.groupOpen = false
	}
}

// writeGradient emits a gradient definition and returns its id.
func (b *Backend) writeGradient(fill style.Fill) string {
	id := fmt.Sprintf("ggqr-fill-%d", b.gradients)
	b.gradients++

	b.buf.WriteString(`<defs>`)
	if fill.Kind == style.RadialFill {
		fmt.Fprintf(&b.buf, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
			id, num(fill.X0), num(fill.Y0), num(fill.R))
	} else {
		fmt.Fprintf(&b.buf, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, num(fill.X0), num(fill.Y0), num(fill.X1), num(fill.Y1))
	}
	for _, s := range fill.Stops {
		fmt.Fprintf(&b.buf, `<stop offset="%s"%s/>`, num(s.Offset), paintAttrs("stop-color", s.Color))
	}
	if fill.Kind == style.RadialFill {
		b.buf.WriteString(`</radialGradient>`)
	} else {
		b.buf.WriteString(`</linearGradient>`)
	}
	b.buf.WriteString(`</defs>`)
	return id
}

// dataURI encodes img as a PNG data URI, reusing the previous encoding
// when the same image is drawn again.
func (b *Backend) dataURI(img image.Image) (string, error) {
	if b.pngCache != nil && sameImage(b.pngCache, img) {
		return b.pngEncoded, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("vector: encode logo: %w", err)
	}
	b.pngCache = img
	b.pngEncoded = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	return b.pngEncoded, nil
}

// sameImage reports whether a and b are the same pointer-backed image.
func sameImage(a, b image.Image) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}

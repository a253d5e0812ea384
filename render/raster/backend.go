// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides the bitmap backend.
//
// Module outlines are filled on a gg.Context with a solid brush, which
// yields their anti-aliased coverage. That coverage is then used as a mask
// to composite the module paint onto the surface with x/image/draw. The
// detour lets gradients work on gg's software renderer, which fills solid
// paints only.
//
// The coverage context uses gg's process-wide accelerator when one is
// registered (see render/gpu), so KindBitmap is software-only only in
// binaries that do not link the GPU backend.
//
// Importing the package registers render.KindBitmap:
//
//	import _ "github.com/gogpu/ggqr/render/raster"
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggqr/render"
	"github.com/gogpu/ggqr/style"
)

func init() {
	render.Register(render.KindBitmap, func() (render.Backend, error) {
		return NewBackend(), nil
	})
}

// Backend renders onto a persistent *image.RGBA.
type Backend struct {
	kind render.Kind

	ctx     *gg.Context // coverage scratch
	mask    *image.Alpha
	surface *image.RGBA

	transform gg.Matrix
	drawing   bool
	closed    bool
}

var _ render.ImageBackend = (*Backend)(nil)

// NewBackend creates a bitmap backend. The surface is allocated by the
// first Begin.
func NewBackend() *Backend {
	return &Backend{kind: render.KindBitmap, transform: gg.Identity()}
}

// NewAccelerated creates a backend that reports render.KindGPU. It draws
// through whatever gg accelerator is registered and fails with
// render.ErrUnavailable when none is.
func NewAccelerated() (*Backend, error) {
	a := gg.Accelerator()
	if a == nil {
		return nil, fmt.Errorf("%w: no GPU accelerator registered", render.ErrUnavailable)
	}
	if !a.CanAccelerate(gg.AccelFill) && !a.CanAccelerate(gg.AccelRRectSDF) {
		return nil, fmt.Errorf("%w: accelerator %q cannot fill paths", render.ErrUnavailable, a.Name())
	}
	return &Backend{kind: render.KindGPU, transform: gg.Identity()}, nil
}

// Kind implements render.Backend.
func (b *Backend) Kind() render.Kind {
	return b.kind
}

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int) error {
	if b.closed {
		return fmt.Errorf("raster: backend closed")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	if b.ctx == nil {
		b.ctx = gg.NewContext(width, height)
	} else if err := b.ctx.Resize(width, height); err != nil {
		return err
	}
	r := image.Rect(0, 0, width, height)
	if b.surface == nil || b.surface.Rect != r {
		b.surface = image.NewRGBA(r)
		b.mask = image.NewAlpha(r)
	}
	b.transform = gg.Identity()
	b.drawing = true
	return nil
}

// Clear implements render.Backend.
func (b *Backend) Clear(bg gg.RGBA) {
	if b.surface == nil {
		return
	}
	xdraw.Draw(b.surface, b.surface.Rect, image.NewUniform(bg.Color()), image.Point{}, xdraw.Src)
}

// SetTransform implements render.Backend.
func (b *Backend) SetTransform(m gg.Matrix) {
	b.transform = m
}

// FillModules implements render.Backend.
func (b *Backend) FillModules(path *gg.Path, fill style.Fill) error {
	if !b.drawing {
		return render.ErrNotBegun
	}
	if len(path.Elements()) == 0 {
		return nil
	}

	b.ctx.Clear()
	b.ctx.SetTransform(b.transform)
	b.ctx.SetFillRule(gg.FillRuleNonZero)
	b.ctx.SetFillBrush(gg.Solid(gg.White))
	replay(b.ctx, path)
	if err := b.ctx.Fill(); err != nil {
		return err
	}
	if err := b.ctx.FlushGPU(); err != nil {
		return err
	}

	// Coverage lives in the alpha channel.
	data := b.ctx.ResizeTarget().Data()
	for i := range b.mask.Pix {
		b.mask.Pix[i] = data[i*4+3]
	}

	xdraw.DrawMask(b.surface, b.surface.Rect, b.source(fill), image.Point{}, b.mask, image.Point{}, xdraw.Over)
	return nil
}

// source returns the paint for fill in device space.
func (b *Backend) source(fill style.Fill) image.Image {
	if fill.Kind == style.SolidFill {
		return image.NewUniform(fill.Color.Color())
	}
	return &brushImage{
		brush:  fill.Brush(),
		inv:    b.transform.Invert(),
		bounds: b.surface.Rect,
	}
}

// DrawLogo implements render.Backend.
func (b *Backend) DrawLogo(op style.LogoOp) error {
	if !b.drawing {
		return render.ErrNotBegun
	}
	render.CompositeLogo(b.surface, op, b.transform)
	return nil
}

// End implements render.Backend.
func (b *Backend) End() error {
	b.drawing = false
	return nil
}

// Image implements render.ImageBackend. The same image is returned after
// every redraw of the same size.
func (b *Backend) Image() (*image.RGBA, error) {
	if b.surface == nil {
		return nil, render.ErrNotBegun
	}
	return b.surface, nil
}

// Close implements render.Backend.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.drawing = false
	if b.ctx != nil {
		err := b.ctx.Close()
		b.ctx = nil
		return err
	}
	return nil
}

// replay feeds path into ctx, which applies its transform to every point.
func replay(ctx *gg.Context, path *gg.Path) {
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			ctx.ClosePath()
		}
	}
}

// brushImage samples a gg brush at pixel centers mapped back through the
// inverse transform.
type brushImage struct {
	brush  gg.Brush
	inv    gg.Matrix
	bounds image.Rectangle
}

func (im *brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (im *brushImage) Bounds() image.Rectangle { return im.bounds }

func (im *brushImage) At(x, y int) color.Color {
	p := im.inv.TransformPoint(gg.Pt(float64(x)+0.5, float64(y)+0.5))
	return im.brush.ColorAt(p.X, p.Y).Color()
}

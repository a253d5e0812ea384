// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/ggqr/style"
)

// CompositeLogo draws the logo of op onto dst under the transform m, with
// Catmull-Rom resampling. A transform that collapses the logo draws nothing.
func CompositeLogo(dst xdraw.Image, op style.LogoOp, m gg.Matrix) {
	if op.Image == nil {
		return
	}
	x, y, w, h := op.Fit()
	sr := op.Image.Bounds()
	if w <= 0 || h <= 0 || sr.Empty() {
		return
	}
	s2d := m.
		Multiply(gg.Translate(x, y)).
		Multiply(gg.Scale(w/float64(sr.Dx()), h/float64(sr.Dy()))).
		Multiply(gg.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
	if math.Abs(s2d.A*s2d.E-s2d.B*s2d.D) < 1e-10 {
		return
	}
	aff := f64.Aff3{s2d.A, s2d.B, s2d.C, s2d.D, s2d.E, s2d.F}
	xdraw.CatmullRom.Transform(dst, aff, op.Image, sr, xdraw.Over, nil)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggqr/style"
)

// kappa is the Bezier circle approximation constant.
const kappa = 0.5522847498307936

// AddModule appends the outline of op to p. Light modules add nothing.
// Every outline is clockwise so overlapping modules merge under the
// non-zero fill rule.
func AddModule(p *gg.Path, op style.ModuleOp) {
	switch op.Shape {
	case style.Rect:
		p.Rectangle(op.X, op.Y, op.Size, op.Size)
	case style.Circle:
		half := op.Size / 2
		p.Circle(op.X+half, op.Y+half, half)
	case style.RoundRect:
		RoundRect(p, op.X, op.Y, op.Size, op.Size, op.Radii)
	}
}

// RoundRect appends a rectangle with per-corner radii to p. Radii are
// clamped to half the shorter side.
func RoundRect(p *gg.Path, x, y, w, h float64, r style.Radii) {
	maxR := math.Min(w, h) / 2
	for i := range r {
		r[i] = math.Max(0, math.Min(r[i], maxR))
	}
	tl, tr, br, bl := r[0], r[1], r[2], r[3]

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		p.CubicTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		p.CubicTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		p.CubicTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	p.LineTo(x, y+tl)
	if tl > 0 {
		p.CubicTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	p.Close()
}

// ModulePaths builds the module outlines of plan. Finder pattern modules go
// to eyes when the plan gives them their own fill, otherwise to body.
// eyes is nil when unused.
func ModulePaths(plan *style.Plan) (body, eyes *gg.Path) {
	body = gg.NewPath()
	if plan.EyeFill != nil {
		eyes = gg.NewPath()
	}
	for _, op := range plan.Modules {
		if !op.Dark() {
			continue
		}
		if eyes != nil && op.Eye {
			AddModule(eyes, op)
			continue
		}
		AddModule(body, op)
	}
	return body, eyes
}

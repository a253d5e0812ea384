// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggqr/encode"
)

// Shape is the primitive drawn for a module.
type Shape uint8

// Module shapes.
const (
	// NoShape marks a light module.
	NoShape Shape = iota
	Rect
	RoundRect
	Circle
)

// Radii holds per-corner radii in pixels, in Corners order:
// top-left, top-right, bottom-right, bottom-left.
type Radii [4]float64

// Uniform reports whether all four radii are equal.
func (r Radii) Uniform() bool {
	return r[0] == r[1] && r[1] == r[2] && r[2] == r[3]
}

// ModuleOp draws one matrix cell. Light cells produce an op with NoShape so
// the plan still describes the full grid.
type ModuleOp struct {
	Row, Col int

	// X, Y and Size give the module square in pixels.
	X, Y, Size float64

	Shape Shape
	Radii Radii

	// Variant is Classify's verdict for the module; it picks the shape of
	// the classy and extra-rounded styles.
	Variant Variant

	// Eye is set for modules inside a finder pattern.
	Eye bool
}

// Dark reports whether the op paints anything.
func (op ModuleOp) Dark() bool {
	return op.Shape != NoShape
}

// FillKind selects how a Fill paints.
type FillKind uint8

// Fill kinds.
const (
	SolidFill FillKind = iota
	LinearFill
	RadialFill
)

// Fill is a resolved paint in surface pixel coordinates.
type Fill struct {
	Kind  FillKind
	Color gg.RGBA // solid color, or the first stop of a gradient

	// LinearFill runs from (X0, Y0) to (X1, Y1). RadialFill is centered
	// at (X0, Y0) with radius R.
	X0, Y0, X1, Y1 float64
	R              float64

	Stops []gg.ColorStop
}

// Brush returns the equivalent gg brush.
func (f Fill) Brush() gg.Brush {
	switch f.Kind {
	case LinearFill:
		b := gg.NewLinearGradientBrush(f.X0, f.Y0, f.X1, f.Y1)
		for _, s := range f.Stops {
			b.AddColorStop(s.Offset, s.Color)
		}
		return b
	case RadialFill:
		b := gg.NewRadialGradientBrush(f.X0, f.Y0, 0, f.R)
		for _, s := range f.Stops {
			b.AddColorStop(s.Offset, s.Color)
		}
		return b
	default:
		return gg.Solid(f.Color)
	}
}

// LogoOp places the logo image. The image is fitted into the square
// (X, Y, Size) keeping its aspect ratio.
type LogoOp struct {
	Image      image.Image
	X, Y, Size float64
}

// Fit returns the rectangle the image occupies inside the logo square.
func (op LogoOp) Fit() (x, y, w, h float64) {
	b := op.Image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return op.X, op.Y, 0, 0
	}
	scale := op.Size / math.Max(iw, ih)
	w, h = iw*scale, ih*scale
	return op.X + (op.Size-w)/2, op.Y + (op.Size-h)/2, w, h
}

// Plan is the resolved draw sequence for one render: Background first, then
// Modules with Fill (eye modules with EyeFill when set), then Logo.
type Plan struct {
	Width, Height int

	Background gg.RGBA
	Fill       Fill
	EyeFill    *Fill

	// Modules holds one op per cell in row-major order, minus the cells
	// covered by the logo exclusion zone.
	Modules []ModuleOp

	Logo *LogoOp

	// ModuleSize is the pixel size of one module.
	ModuleSize float64

	// Bounds is the symbol area without the quiet zone.
	Bounds Box
}

// Box is an axis-aligned rectangle in pixels.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share a region of positive area.
func (r Box) Overlaps(o Box) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// DarkCount returns the number of module ops that paint.
func (p *Plan) DarkCount() int {
	n := 0
	for _, op := range p.Modules {
		if op.Dark() {
			n++
		}
	}
	return n
}

// Resolve validates cfg against m and produces the draw plan. A logo must
// already be loaded (see LoadLogo). Resolve never modifies m.
func Resolve(cfg Config, m encode.Matrix) (*Plan, error) {
	n := m.Size()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty module matrix", ErrInvalidConfig)
	}
	if err := cfg.ValidateFor(n); err != nil {
		return nil, err
	}
	if cfg.Logo != nil && cfg.Logo.Image == nil {
		return nil, fmt.Errorf("%w: logo %q is not loaded", ErrInvalidConfig, cfg.Logo.Source)
	}

	// Colors were checked by Validate.
	bg, _ := ParseColor(cfg.Background)
	fg, _ := ParseColor(cfg.Foreground)

	size := float64(cfg.Size)
	unit := size / float64(n+2*cfg.Margin)
	origin := unit * float64(cfg.Margin)
	bounds := Box{X: origin, Y: origin, W: unit * float64(n), H: unit * float64(n)}

	p := &Plan{
		Width:      cfg.Size,
		Height:     cfg.Size,
		Background: bg,
		Fill:       resolveFill(cfg.Gradient, fg, bounds),
		ModuleSize: unit,
		Bounds:     bounds,
		Modules:    make([]ModuleOp, 0, n*n),
	}
	if cfg.EyeColor != "" {
		c, _ := ParseColor(cfg.EyeColor)
		p.EyeFill = &Fill{Kind: SolidFill, Color: c}
	}

	var zone *Box
	if cfg.Logo != nil {
		side := cfg.Logo.Size * size
		p.Logo = &LogoOp{
			Image: cfg.Logo.Image,
			X:     (size - side) / 2,
			Y:     (size - side) / 2,
			Size:  side,
		}
		if !cfg.Logo.KeepModules {
			pad := float64(cfg.Logo.Margin) * unit
			zone = &Box{X: p.Logo.X - pad, Y: p.Logo.Y - pad, W: side + 2*pad, H: side + 2*pad}
		}
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			op := ModuleOp{
				Row:  row,
				Col:  col,
				X:    origin + float64(col)*unit,
				Y:    origin + float64(row)*unit,
				Size: unit,
				Eye:  inFinder(n, row, col),
			}
			if zone != nil && zone.Overlaps(Box{X: op.X, Y: op.Y, W: unit, H: unit}) {
				continue
			}
			op.Variant = Classify(m, row, col)
			if op.Variant != Light {
				dot := cfg.DotStyle
				if op.Eye && cfg.EyeStyle != "" {
					dot = cfg.EyeStyle
				}
				op.Shape, op.Radii = moduleShape(dot, cfg.CornerRadius, unit, op.Variant, ExposedCorners(m, row, col))
			}
			p.Modules = append(p.Modules, op)
		}
	}
	return p, nil
}

// moduleShape picks the primitive and corner radii for a dark module of
// variant v.
func moduleShape(dot DotStyle, cornerRadius, unit float64, v Variant, exposed Corners) (Shape, Radii) {
	half := unit / 2
	switch dot {
	case Classy, ClassyRounded, ExtraRounded:
		switch v {
		case Interior, Edge:
			return Rect, Radii{}
		case Isolated:
			if dot == ExtraRounded {
				return Circle, Radii{half, half, half, half}
			}
		}
	}
	switch dot {
	case Rounded:
		r := cornerRadius * half
		if r == 0 {
			return Rect, Radii{}
		}
		return RoundRect, Radii{r, r, r, r}
	case Dot:
		return Circle, Radii{half, half, half, half}
	case Classy:
		return cornerShape(exposed&(TopLeft|BottomRight), AllCorners, half, 0)
	case ClassyRounded:
		return cornerShape(exposed, TopLeft|BottomRight, half, cornerRadius*half)
	case ExtraRounded:
		return cornerShape(exposed, AllCorners, half, 0)
	default:
		return Rect, Radii{}
	}
}

// cornerShape rounds the corners in exposed: radius big for those also in
// full, radius small for the rest.
func cornerShape(exposed, full Corners, big, small float64) (Shape, Radii) {
	var r Radii
	for i, c := range [4]Corners{TopLeft, TopRight, BottomRight, BottomLeft} {
		switch {
		case exposed.Has(c) && full.Has(c):
			r[i] = big
		case exposed.Has(c):
			r[i] = small
		}
	}
	if r == (Radii{}) {
		return Rect, r
	}
	return RoundRect, r
}

// resolveFill builds the module paint. Gradients span the symbol bounds.
func resolveFill(g *Gradient, fg gg.RGBA, b Box) Fill {
	if g == nil {
		return Fill{Kind: SolidFill, Color: fg}
	}
	stops := make([]gg.ColorStop, len(g.Stops))
	for i, s := range g.Stops {
		c, _ := ParseColor(s.Color)
		stops[i] = gg.ColorStop{Offset: s.Offset, Color: c}
	}
	cx, cy := b.X+b.W/2, b.Y+b.H/2

	if g.Type == Radial {
		return Fill{
			Kind:  RadialFill,
			X0:    cx,
			Y0:    cy,
			R:     math.Hypot(b.W, b.H) / 2,
			Stops: stops,
			Color: stops[0].Color,
		}
	}

	// The gradient line passes through the center; its half length is the
	// projection of the bounds onto it, so both ends touch a corner.
	rad := g.Angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	half := (b.W*math.Abs(dx) + b.H*math.Abs(dy)) / 2
	return Fill{
		Kind:  LinearFill,
		X0:    cx - dx*half,
		Y0:    cy - dy*half,
		X1:    cx + dx*half,
		Y1:    cy + dy*half,
		Stops: stops,
		Color: stops[0].Color,
	}
}

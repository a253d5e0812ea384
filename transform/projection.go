// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transform

import "github.com/gogpu/gg"

// Transformer is a 2D drawing context whose transform can be replaced.
// *gg.Context implements it.
type Transformer interface {
	SetTransform(m gg.Matrix)
}

var _ Transformer = (*gg.Context)(nil)

// Preset defaults.
const (
	// IsometricAngle is the classic isometric tilt, atan(1/sqrt(2)) off the
	// view axis, expressed as a rotation of the surface about X.
	IsometricAngle = 54.735610317245346

	// PerspectiveTilt is the angle the perspective preset leans the surface
	// back about the horizontal axis through the origin point.
	PerspectiveTilt = 30.0
)

// Options3D configures Apply3DTransform. Zero rotation, translation, skew
// and perspective fields mean "none". Zero scale fields mean 1; build the
// matrix with Scaling to collapse an axis on purpose.
type Options3D struct {
	RotateX, RotateY, RotateZ          float64 // degrees
	TranslateX, TranslateY, TranslateZ float64 // pixels
	ScaleX, ScaleY, ScaleZ             float64
	SkewX, SkewY                       float64 // degrees
	Perspective                        float64 // viewer distance in pixels
}

// IsZero reports whether o describes no transform at all.
func (o Options3D) IsZero() bool {
	return o == Options3D{}
}

// Matrix composes the options about the center of a width×height surface
// in the fixed order translate, rotate, scale, skew, as a CSS transform list
// would: skew is applied to points first and translation last, followed by
// the perspective projection.
func (o Options3D) Matrix(width, height float64) Matrix4 {
	cx, cy := width/2, height/2

	m := Translation(cx, cy, 0)
	m = m.Multiply(Perspective(o.Perspective))
	m = m.Multiply(Translation(o.TranslateX, o.TranslateY, o.TranslateZ))
	m = m.Multiply(RotationX(o.RotateX))
	m = m.Multiply(RotationY(o.RotateY))
	m = m.Multiply(RotationZ(o.RotateZ))
	m = m.Multiply(Scaling(orOne(o.ScaleX), orOne(o.ScaleY), orOne(o.ScaleZ)))
	m = m.Multiply(Skew(o.SkewX, o.SkewY))
	return m.Multiply(Translation(-cx, -cy, 0))
}

// Apply3DTransform composes opts about the surface center, projects the
// result to 2D and sets it as ctx's transform. It returns the full 4x4
// transform so callers can also emit it as CSS.
func Apply3DTransform(ctx Transformer, opts Options3D, width, height float64) Matrix4 {
	m := opts.Matrix(width, height)
	ctx.SetTransform(m.AffineAt(width/2, height/2))
	return m
}

// IsometricMatrix returns the isometric preset: the surface is turned 45
// degrees about Z and tilted angleDegrees about X, around its center.
func IsometricMatrix(width, height, angleDegrees float64) Matrix4 {
	cx, cy := width/2, height/2
	return Translation(cx, cy, 0).
		Multiply(RotationX(angleDegrees)).
		Multiply(RotationZ(45)).
		Multiply(Translation(-cx, -cy, 0))
}

// ApplyIsometricProjection sets an isometric view of a width×height surface
// on ctx and returns the 4x4 transform.
func ApplyIsometricProjection(ctx Transformer, width, height, angleDegrees float64) Matrix4 {
	m := IsometricMatrix(width, height, angleDegrees)
	ctx.SetTransform(m.AffineAt(width/2, height/2))
	return m
}

// PerspectiveMatrix returns the perspective preset: the surface leans back
// PerspectiveTilt degrees about the horizontal axis through
// (originX, originY) and is viewed from depth pixels away.
func PerspectiveMatrix(originX, originY, depth float64) Matrix4 {
	return Translation(originX, originY, 0).
		Multiply(Perspective(depth)).
		Multiply(RotationX(PerspectiveTilt)).
		Multiply(Translation(-originX, -originY, 0))
}

// ApplyPerspectiveProjection sets the perspective preset on ctx. The affine
// approximation is taken at the surface center.
func ApplyPerspectiveProjection(ctx Transformer, width, height, originX, originY, depth float64) Matrix4 {
	m := PerspectiveMatrix(originX, originY, depth)
	ctx.SetTransform(m.AffineAt(width/2, height/2))
	return m
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

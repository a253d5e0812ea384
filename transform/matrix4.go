// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transform

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Matrix4 is a 4x4 homogeneous transform in row-major order.
type Matrix4 [16]float64

// Point4 is a homogeneous point returned by TransformPoint.
type Point4 struct {
	X, Y, Z, W float64
}

// Project divides by W and returns the Cartesian point.
// A zero W returns the point unchanged.
func (p Point4) Project() Point4 {
	if p.W == 0 || p.W == 1 {
		return p
	}
	return Point4{X: p.X / p.W, Y: p.Y / p.W, Z: p.Z / p.W, W: 1}
}

// Identity returns the identity transform.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation by (dx, dy, dz).
func Translation(dx, dy, dz float64) Matrix4 {
	return Matrix4{
		1, 0, 0, dx,
		0, 1, 0, dy,
		0, 0, 1, dz,
		0, 0, 0, 1,
	}
}

// Scaling creates a scale by (sx, sy, sz). A zero factor collapses that axis.
func Scaling(sx, sy, sz float64) Matrix4 {
	return Matrix4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// RotationX rotates about the X axis. RotationX(90) maps +Y onto +Z.
func RotationX(degrees float64) Matrix4 {
	if degrees == 0 {
		return Identity()
	}
	s, c := sincos(degrees)
	return Matrix4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY rotates about the Y axis. RotationY(90) maps +Z onto +X.
func RotationY(degrees float64) Matrix4 {
	if degrees == 0 {
		return Identity()
	}
	s, c := sincos(degrees)
	return Matrix4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ rotates about the Z axis. RotationZ(90) maps +X onto +Y.
func RotationZ(degrees float64) Matrix4 {
	if degrees == 0 {
		return Identity()
	}
	s, c := sincos(degrees)
	return Matrix4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Skew creates a 2D skew in the XY plane, matching CSS skew(xDeg, yDeg).
func Skew(xDegrees, yDegrees float64) Matrix4 {
	return Matrix4{
		1, tanDeg(xDegrees), 0, 0,
		tanDeg(yDegrees), 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective creates a CSS-style perspective with the viewer at distance d
// on the +Z axis. Non-positive distances return the identity.
func Perspective(d float64) Matrix4 {
	m := Identity()
	if d > 0 {
		m[14] = -1 / d
	}
	return m
}

// Multiply returns m·other. Applying the result to a point applies other
// first, then m. Neither operand is modified.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// TransformPoint applies the transform to the homogeneous point (x, y, z, 1).
// Callers divide by W (see Point4.Project) when W != 1.
func (m Matrix4) TransformPoint(x, y, z float64) Point4 {
	return Point4{
		X: m[0]*x + m[1]*y + m[2]*z + m[3],
		Y: m[4]*x + m[5]*y + m[6]*z + m[7],
		Z: m[8]*x + m[9]*y + m[10]*z + m[11],
		W: m[12]*x + m[13]*y + m[14]*z + m[15],
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix4) IsIdentity() bool {
	return m == Identity()
}

// IsAffine reports whether m has no perspective row.
func (m Matrix4) IsAffine() bool {
	return m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1
}

// CSS serializes m as a CSS matrix3d() value. CSS expects the components
// in column-major order, so the row-major storage is transposed.
func (m Matrix4) CSS() string {
	var sb strings.Builder
	sb.Grow(16 * 8)
	sb.WriteString("matrix3d(")
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if col > 0 || row > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatComponent(m[row*4+col]))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// String implements fmt.Stringer.
func (m Matrix4) String() string {
	return m.CSS()
}

// Affine drops the z axis and returns the 2D part of m as a gg.Matrix.
// For perspective transforms this is only exact at the origin; use AffineAt
// to choose the reference point.
func (m Matrix4) Affine() gg.Matrix {
	return m.AffineAt(0, 0)
}

// AffineAt returns the affine transform that best matches m around the
// point (cx, cy) of the z=0 plane: it maps (cx, cy) exactly and has the same
// first derivatives there. For affine m the result is independent of the
// reference point.
func (m Matrix4) AffineAt(cx, cy float64) gg.Matrix {
	if m.IsAffine() {
		return gg.Matrix{
			A: m[0], B: m[1], C: m[3],
			D: m[4], E: m[5], F: m[7],
		}
	}

	w := m[12]*cx + m[13]*cy + m[15]
	if w == 0 {
		// Reference point on the vanishing plane; keep the linear part only.
		return gg.Matrix{
			A: m[0], B: m[1], C: m[3],
			D: m[4], E: m[5], F: m[7],
		}
	}
	x := (m[0]*cx + m[1]*cy + m[3]) / w
	y := (m[4]*cx + m[5]*cy + m[7]) / w

	a := (m[0] - x*m[12]) / w
	b := (m[1] - x*m[13]) / w
	d := (m[4] - y*m[12]) / w
	e := (m[5] - y*m[13]) / w

	return gg.Matrix{
		A: a, B: b, C: x - a*cx - b*cy,
		D: d, E: e, F: y - d*cx - e*cy,
	}
}

// sincos returns exact values for multiples of 90 degrees so quarter turns
// compose without drift.
func sincos(degrees float64) (sin, cos float64) {
	if q := degrees / 90; q == math.Trunc(q) {
		switch ((int64(q) % 4) + 4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		default:
			return -1, 0
		}
	}
	return math.Sincos(degrees * math.Pi / 180)
}

func tanDeg(degrees float64) float64 {
	if degrees == 0 {
		return 0
	}
	return math.Tan(degrees * math.Pi / 180)
}

func formatComponent(v float64) string {
	if v == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

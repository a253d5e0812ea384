// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package transform provides 4x4 homogeneous transforms and projection
// presets for drawing QR surfaces with a 3D look on a 2D context.
//
// # Matrix4
//
// Matrix4 is a value type holding 16 components in row-major order:
//
//	| M[0]  M[1]  M[2]  M[3]  |
//	| M[4]  M[5]  M[6]  M[7]  |
//	| M[8]  M[9]  M[10] M[11] |
//	| M[12] M[13] M[14] M[15] |
//
// Points are column vectors, so a transform maps (x, y, z, 1) to M·p.
// Composition follows gg.Matrix: a.Multiply(b) applies b first, then a.
//
//	m := transform.Translation(10, 0, 0).Multiply(transform.RotationZ(90))
//	p := m.TransformPoint(1, 0, 0).Project() // rotate, then translate: (10, 1, 0)
//
// Angles are in degrees and the coordinate system is right-handed.
//
// # Projection onto a 2D context
//
// A 2D drawing context only understands affine transforms. [Matrix4.Affine]
// drops the z axis, and [Matrix4.AffineAt] linearizes a perspective
// transform around a reference point so the result is exact at that point.
// The Apply* helpers compose the primitives and install the resulting
// affine on any [Transformer], which *gg.Context satisfies.
//
// These are 2D approximations of 3D perspective, not true 3D rendering.
// For hosts that can render CSS 3D transforms, [Matrix4.CSS] returns the
// exact matrix3d(...) string.
package transform

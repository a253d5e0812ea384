// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import "github.com/gogpu/ggqr/encode"

// Variant classifies a module by its dark orthogonal neighbours.
type Variant uint8

// Module variants.
const (
	// Light modules are not drawn.
	Light Variant = iota
	// Isolated modules have no dark neighbours.
	Isolated
	// Interior modules have four dark neighbours.
	Interior
	// Corner modules have at least one exposed corner: a corner whose two
	// adjacent neighbours are both light.
	Corner
	// Edge modules are dark modules with some light neighbours but no
	// exposed corner, like the middle of a straight run.
	Edge
)

var variantNames = [...]string{"light", "isolated", "interior", "corner", "edge"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "variant?"
}

// Corners is a set of module corners.
type Corners uint8

// Module corners.
const (
	TopLeft Corners = 1 << iota
	TopRight
	BottomRight
	BottomLeft

	NoCorners  Corners = 0
	AllCorners         = TopLeft | TopRight | BottomRight | BottomLeft
)

// Has reports whether all corners in o are in c.
func (c Corners) Has(o Corners) bool {
	return c&o == o
}

// ExposedCorners returns the corners of the module at (row, col) whose two
// adjacent orthogonal neighbours are both light. Light modules have none.
func ExposedCorners(m encode.Matrix, row, col int) Corners {
	if !m.Dark(row, col) {
		return NoCorners
	}
	up := m.Dark(row-1, col)
	down := m.Dark(row+1, col)
	left := m.Dark(row, col-1)
	right := m.Dark(row, col+1)

	var c Corners
	if !up && !left {
		c |= TopLeft
	}
	if !up && !right {
		c |= TopRight
	}
	if !down && !right {
		c |= BottomRight
	}
	if !down && !left {
		c |= BottomLeft
	}
	return c
}

// Classify returns the variant of the module at (row, col). It depends only
// on the module and its four orthogonal neighbours, so mirroring the matrix
// mirrors the result. Resolve records it on every ModuleOp.
func Classify(m encode.Matrix, row, col int) Variant {
	if !m.Dark(row, col) {
		return Light
	}
	n := 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if m.Dark(row+d[0], col+d[1]) {
			n++
		}
	}
	switch {
	case n == 0:
		return Isolated
	case n == 4:
		return Interior
	case ExposedCorners(m, row, col) != NoCorners:
		return Corner
	default:
		return Edge
	}
}

// inFinder reports whether (row, col) lies in one of the three 7×7 finder
// patterns of an n×n symbol.
func inFinder(n, row, col int) bool {
	const f = 7
	top := row < f
	left := col < f
	return (top && left) || (top && col >= n-f) || (row >= n-f && left)
}

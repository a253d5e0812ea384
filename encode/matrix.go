// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package encode

import (
	"fmt"
	"strings"
)

// Matrix is an immutable square grid of QR modules. Dark modules are true.
// The zero value is an empty matrix.
type Matrix struct {
	size int
	dark []bool // row-major, size*size
}

// NewMatrix copies rows into a Matrix. Rows must form a non-empty square.
func NewMatrix(rows [][]bool) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, fmt.Errorf("%w: no rows", ErrNotSquare)
	}
	dark := make([]bool, n*n)
	for r, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("%w: row %d has %d modules, want %d", ErrNotSquare, r, len(row), n)
		}
		copy(dark[r*n:], row)
	}
	return Matrix{size: n, dark: dark}, nil
}

// newMatrixFunc builds a size×size matrix from a module lookup.
func newMatrixFunc(size int, isDark func(row, col int) bool) Matrix {
	dark := make([]bool, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			dark[r*size+c] = isDark(r, c)
		}
	}
	return Matrix{size: size, dark: dark}
}

// Size returns the number of modules per side.
func (m Matrix) Size() int {
	return m.size
}

// Dark reports whether the module at (row, col) is dark.
// Coordinates outside the matrix are light.
func (m Matrix) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.dark[row*m.size+col]
}

// Version returns the QR version implied by the size (21 -> 1, 25 -> 2, ...),
// or 0 if the size is not a valid QR symbol size.
func (m Matrix) Version() int {
	if m.size < 21 || (m.size-17)%4 != 0 {
		return 0
	}
	return (m.size - 17) / 4
}

// DarkCount returns the number of dark modules.
func (m Matrix) DarkCount() int {
	n := 0
	for _, d := range m.dark {
		if d {
			n++
		}
	}
	return n
}

// Rows returns a copy of the matrix as rows.
func (m Matrix) Rows() [][]bool {
	rows := make([][]bool, m.size)
	for r := range rows {
		rows[r] = make([]bool, m.size)
		copy(rows[r], m.dark[r*m.size:(r+1)*m.size])
	}
	return rows
}

// String renders the matrix with '#' for dark and '.' for light modules.
func (m Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.size * (m.size + 1))
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if m.dark[r*m.size+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// num formats v with at most three decimals and no negative zero.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hexColor returns c as #rrggbb, ignoring alpha.
func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// paintAttrs returns the color attribute named attr, followed by a matching
// opacity attribute when c is not opaque. The result starts with a space.
func paintAttrs(attr string, c gg.RGBA) string {
	if c.A <= 0 {
		return fmt.Sprintf(` %s="none"`, attr)
	}
	s := fmt.Sprintf(` %s="%s"`, attr, hexColor(c))
	if c.A < 1 {
		opacity := "fill-opacity"
		if attr == "stop-color" {
			opacity = "stop-opacity"
		}
		s += fmt.Sprintf(` %s="%s"`, opacity, num(c.A))
	}
	return s
}

// writePathData writes the SVG path data for p.
func writePathData(buf *bytes.Buffer, p *gg.Path) {
	sep := func(i int) {
		if i > 0 {
			buf.WriteByte(' ')
		}
	}
	for i, elem := range p.Elements() {
		sep(i)
		switch e := elem.(type) {
		case gg.MoveTo:
			fmt.Fprintf(buf, "M%s %s", num(e.Point.X), num(e.Point.Y))
		case gg.LineTo:
			fmt.Fprintf(buf, "L%s %s", num(e.Point.X), num(e.Point.Y))
		case gg.QuadTo:
			fmt.Fprintf(buf, "Q%s %s %s %s",
				num(e.Control.X), num(e.Control.Y), num(e.Point.X), num(e.Point.Y))
		case gg.CubicTo:
			fmt.Fprintf(buf, "C%s %s %s %s %s %s",
				num(e.Control1.X), num(e.Control1.Y),
				num(e.Control2.X), num(e.Control2.Y),
				num(e.Point.X), num(e.Point.Y))
		case gg.Close:
			buf.WriteByte('Z')
		}
	}
}

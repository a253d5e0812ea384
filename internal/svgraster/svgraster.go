// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgraster rasterizes SVG documents with oksvg and rasterx.
//
// oksvg understands paths, basic shapes, and linear and radial gradients.
// It ignores <image> elements; callers that embed bitmaps composite them
// separately.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrNoSize is returned when neither the caller nor the document gives a size.
var ErrNoSize = errors.New("svgraster: document has no usable size")

// Decode parses r and renders it into a new image. The document is fitted
// into maxW×maxH keeping its aspect ratio; pass 0 for both to use the
// viewBox size.
func Decode(r io.Reader, maxW, maxH int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svgraster: parse: %w", err)
	}
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	w, h := maxW, maxH
	switch {
	case vw <= 0 || vh <= 0:
		if w <= 0 || h <= 0 {
			return nil, ErrNoSize
		}
	case w <= 0 || h <= 0:
		w, h = int(math.Ceil(vw)), int(math.Ceil(vh))
	default:
		scale := math.Min(float64(w)/vw, float64(h)/vh)
		w, h = max(1, int(math.Round(vw*scale))), max(1, int(math.Round(vh*scale)))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw(icon, img)
	return img, nil
}

// Render parses r and draws it over dst, stretched to dst's bounds.
func Render(dst *image.RGBA, r io.Reader) error {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("svgraster: parse: %w", err)
	}
	draw(icon, dst)
	return nil
}

func draw(icon *oksvg.SvgIcon, dst *image.RGBA) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	icon.SetTarget(float64(b.Min.X), float64(b.Min.Y), float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
}

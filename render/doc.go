// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws resolved QR plans onto surfaces.
//
// A Backend is one kind of surface: a bitmap, SVG markup, or a GPU-backed
// bitmap. Backends register themselves by Kind from their package init,
// following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/ggqr/render/raster" // KindBitmap
//	import _ "github.com/gogpu/ggqr/render/vector" // KindVector
//	import _ "github.com/gogpu/ggqr/render/gpu"    // KindGPU (needs a GPU)
//
//	b, err := render.New(render.KindBitmap)
//	if err != nil {
//	    // render.ErrUnavailable: not imported or no hardware
//	}
//	defer b.Close()
//	err = render.Execute(b, plan, gg.Identity())
//
// Execute replays a plan in a fixed order: Begin, Clear with the
// background, SetTransform, FillModules for the body, FillModules for the
// finder patterns when they have their own fill, DrawLogo, End.
//
// Backends keep their surface between runs. A second Execute on the same
// backend redraws into the same image or markup buffer, so references
// handed out earlier stay valid.
package render

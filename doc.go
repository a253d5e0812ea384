// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggqr renders styled QR codes.
//
// # Overview
//
// ggqr turns a content string and a style configuration into a rendered
// QR code. The symbol itself comes from an encoder (see package encode);
// ggqr styles the module matrix and draws it on a bitmap, vector (SVG) or
// GPU-accelerated surface built on gogpu/gg.
//
// # Quick Start
//
//	import "github.com/gogpu/ggqr"
//
//	cfg := style.Default()
//	cfg.DotStyle = style.Rounded
//
//	qr, err := ggqr.New("https://gogpu.dev", cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer qr.Destroy()
//
//	png, err := qr.Export(ggqr.FormatPNG)
//
// # Instances
//
// An Instance owns one render surface for its whole life. UpdateStyle
// redraws the same surface, so the Element returned by Element stays valid
// and shows the new contents. Destroy releases the surface. After it,
// methods that return an error fail with ErrDestroyed and accessors such
// as Content, Style and Element.Bounds return zero values.
//
// # Backends
//
// The bitmap and vector backends are always available. The GPU backend is
// opt-in:
//
//	import _ "github.com/gogpu/ggqr/render/gpu"
//
//	qr, err := ggqr.New(content, cfg, ggqr.WithBackend(render.KindGPU))
//
// Without an initialized accelerator, New fails with render.ErrUnavailable.
// There is no silent fallback to another backend.
//
// # Transforms
//
// WithTransform, With3D, WithIsometric and WithPerspective project a 3D
// transform onto the 2D surface. Element.CSSTransform returns the full
// transform as a CSS matrix3d() for hosts that apply it themselves.
//
// # Concurrency
//
// An Instance is not safe for concurrent use, except for Destroy. Use
// RenderBatch to render many codes in parallel.
package ggqr

// Version is the library version.
const Version = "0.1.0"

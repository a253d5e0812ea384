// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

import (
	"github.com/gogpu/ggqr/encode"
	"github.com/gogpu/ggqr/render"
	"github.com/gogpu/ggqr/transform"
)

// DefaultJPEGQuality is the JPEG quality used unless WithJPEGQuality says
// otherwise.
const DefaultJPEGQuality = 90

// Option configures an Instance during creation.
//
// Example:
//
//	qr, err := ggqr.New(content, cfg,
//	    ggqr.WithBackend(render.KindVector),
//	    ggqr.WithIsometric(transform.IsometricAngle),
//	)
type Option func(*options)

type options struct {
	kind        render.Kind
	encoder     encode.Encoder
	project     projector
	container   Container
	jpegQuality int
}

// projector sets a projection on t for a width×height surface and returns
// the full 3D transform.
type projector func(t transform.Transformer, width, height float64) transform.Matrix4

func defaultOptions() options {
	return options{
		kind:        render.KindBitmap,
		jpegQuality: DefaultJPEGQuality,
	}
}

// WithBackend selects the surface kind. The default is render.KindBitmap.
func WithBackend(kind render.Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithEncoder replaces the default encoder (encode.Default).
func WithEncoder(enc encode.Encoder) Option {
	return func(o *options) {
		o.encoder = enc
	}
}

// WithTransform draws the code under m. Perspective transforms are
// approximated around the surface center.
func WithTransform(m transform.Matrix4) Option {
	return func(o *options) {
		o.project = func(t transform.Transformer, w, h float64) transform.Matrix4 {
			t.SetTransform(m.AffineAt(w/2, h/2))
			return m
		}
	}
}

// With3D draws the code under the transform described by opts, composed
// about the surface center.
func With3D(opts transform.Options3D) Option {
	return func(o *options) {
		o.project = func(t transform.Transformer, w, h float64) transform.Matrix4 {
			return transform.Apply3DTransform(t, opts, w, h)
		}
	}
}

// WithIsometric draws the code in an isometric view tilted angleDegrees
// about the X axis. transform.IsometricAngle is the classic tilt.
func WithIsometric(angleDegrees float64) Option {
	return func(o *options) {
		o.project = func(t transform.Transformer, w, h float64) transform.Matrix4 {
			return transform.ApplyIsometricProjection(t, w, h, angleDegrees)
		}
	}
}

// WithPerspective leans the code back about (originX, originY), seen from
// depth pixels away.
func WithPerspective(originX, originY, depth float64) Option {
	return func(o *options) {
		o.project = func(t transform.Transformer, w, h float64) transform.Matrix4 {
			return transform.ApplyPerspectiveProjection(t, w, h, originX, originY, depth)
		}
	}
}

// WithContainer mounts the instance's element in c once it is rendered.
func WithContainer(c Container) Option {
	return func(o *options) {
		o.container = c
	}
}

// WithJPEGQuality sets the quality for FormatJPEG exports, from 1 to 100.
// Out-of-range values are clamped.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = min(100, max(1, q))
	}
}

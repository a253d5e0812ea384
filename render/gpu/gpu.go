// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // registers the wgpu accelerator

	"github.com/gogpu/ggqr/render"
	"github.com/gogpu/ggqr/render/raster"
)

func init() {
	render.Register(render.KindGPU, func() (render.Backend, error) {
		b, err := raster.NewAccelerated()
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// Available reports whether a GPU accelerator is registered with gg.
func Available() bool {
	return gg.Accelerator() != nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu registers the GPU-accelerated bitmap backend.
//
// The backend draws through the wgpu accelerator that github.com/gogpu/gg/gpu
// registers with gg. When no adapter is available that registration fails,
// and render.New(render.KindGPU) returns render.ErrUnavailable instead of
// falling back to the software bitmap backend.
//
//	import _ "github.com/gogpu/ggqr/render/gpu"
//
// gg's accelerator is process-wide: once this package is linked in, the
// bitmap backend also fills through it.
//
// Build with -tags nogpu to leave the GPU stack out entirely. The package
// then registers nothing and render.KindGPU reports render.ErrUnavailable.
package gpu

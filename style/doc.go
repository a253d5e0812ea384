// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package style describes how a QR code looks and resolves that description
// into a drawing plan.
//
// A Config is a plain value: copy it, tweak it, validate it. Resolve pairs a
// Config with an encoded module matrix and yields a Plan: a flat background,
// one fill for the modules, one ModuleOp per matrix cell in row-major order,
// and an optional logo overlay. Renderers in package render consume plans;
// this package draws nothing itself.
//
// # Dot styles
//
//   - square: filled module squares
//   - rounded: rounded squares, radius CornerRadius × half the module size
//   - dot: circles
//   - classy: the top-left and bottom-right corners are fully rounded where
//     the module is exposed there (see Classify)
//   - classy-rounded: like classy, and the other exposed corners are rounded
//     by CornerRadius
//   - extra-rounded: every exposed corner is fully rounded, so runs of modules
//     merge into blobs and lone modules become circles
//
// # Logo
//
// A logo reserves a centered square exclusion zone. Modules that overlap the
// zone are left out of the plan unless Logo.KeepModules is set. Resolve does
// not check that the error correction level can absorb the loss; pick
// encode.LevelH for large logos.
package style

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggqr/style"
)

// Execute draws plan on b under the transform tr. It runs to completion on
// the calling goroutine.
func Execute(b Backend, plan *style.Plan, tr gg.Matrix) error {
	start := time.Now()

	if err := b.Begin(plan.Width, plan.Height); err != nil {
		return fmt.Errorf("render: begin: %w", err)
	}
	b.Clear(plan.Background)
	b.SetTransform(tr)

	body, eyes := ModulePaths(plan)
	if err := b.FillModules(body, plan.Fill); err != nil {
		return fmt.Errorf("render: fill modules: %w", err)
	}
	if eyes != nil {
		if err := b.FillModules(eyes, *plan.EyeFill); err != nil {
			return fmt.Errorf("render: fill finder patterns: %w", err)
		}
	}
	if plan.Logo != nil {
		if err := b.DrawLogo(*plan.Logo); err != nil {
			return fmt.Errorf("render: logo: %w", err)
		}
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("render: end: %w", err)
	}

	gg.Logger().Debug("render: plan executed",
		"kind", b.Kind(),
		"width", plan.Width,
		"height", plan.Height,
		"modules", len(plan.Modules),
		"elapsed", time.Since(start))
	return nil
}

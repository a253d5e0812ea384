// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

import (
	"context"
	"time"

	"github.com/gogpu/ggqr/internal/parallel"
	"github.com/gogpu/ggqr/style"
)

// Job is one code of a batch.
type Job struct {
	Content string
	Style   style.Config

	// Format overrides BatchOptions.Format for this job.
	Format Format

	// Options are passed to New. WithContainer is ignored.
	Options []Option
}

// Result is the outcome of one Job. Results are returned in job order.
type Result struct {
	Index  int
	Format Format
	Data   []byte
	Err    error
}

// BatchOptions configures RenderBatch.
type BatchOptions struct {
	// Workers is the number of codes rendered at once. Zero means
	// GOMAXPROCS.
	Workers int

	// Format is the export format of jobs that do not set their own.
	// Empty means FormatPNG.
	Format Format
}

// RenderBatch renders jobs on a fixed-size worker pool. Each result holds
// the exported bytes of its job or the job's own error; one failing job does
// not stop the others.
//
// When ctx is cancelled, jobs that have not started fail with ctx.Err() and
// RenderBatch returns ctx.Err() alongside the results.
func RenderBatch(ctx context.Context, jobs []Job, opts BatchOptions) ([]Result, error) {
	start := time.Now()
	if opts.Format == "" {
		opts.Format = FormatPNG
	}

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i] = Result{Index: i, Format: job.Format}
		if job.Format == "" {
			results[i].Format = opts.Format
		}
	}

	pool := parallel.NewPool(opts.Workers)
	defer pool.Close()

	errs := pool.Map(ctx, len(jobs), func(_ context.Context, i int) error {
		data, err := renderJob(jobs[i], results[i].Format)
		results[i].Data = data
		return err
	})

	failed := 0
	for i, err := range errs {
		results[i].Err = err
		if err != nil {
			failed++
		}
	}

	Logger().Debug("ggqr: batch rendered",
		"jobs", len(jobs),
		"failed", failed,
		"workers", pool.Workers(),
		"elapsed", time.Since(start))
	return results, ctx.Err()
}

func renderJob(job Job, f Format) ([]byte, error) {
	opts := append(job.Options[:len(job.Options):len(job.Options)], WithContainer(nil))
	inst, err := New(job.Content, job.Style, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = inst.Destroy() }()
	return inst.Export(f)
}

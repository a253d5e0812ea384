// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"testing"

	"github.com/gogpu/ggqr/encode"
	"github.com/gogpu/ggqr/render"
	"github.com/gogpu/ggqr/style"
)

func TestRenderBatchOrder(t *testing.T) {
	jobs := make([]Job, 12)
	for i := range jobs {
		cfg := style.Default()
		// Distinct sizes identify the results.
		cfg.Size = 200 + 10*i
		jobs[i] = Job{Content: fmt.Sprintf("item-%d", i), Style: cfg}
	}

	results, err := RenderBatch(context.Background(), jobs, BatchOptions{Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("job %d: %v", i, r.Err)
			continue
		}
		if r.Index != i || r.Format != FormatPNG {
			t.Errorf("result %d: index %d format %q", i, r.Index, r.Format)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(r.Data))
		if err != nil {
			t.Errorf("job %d: %v", i, err)
			continue
		}
		if want := 200 + 10*i; cfg.Width != want {
			t.Errorf("result %d is %d px wide, want %d", i, cfg.Width, want)
		}
	}
}

func TestRenderBatchPerJobErrors(t *testing.T) {
	bad := style.Default()
	bad.Foreground = "not-a-color"

	jobs := []Job{
		{Content: "ok", Style: style.Default()},
		{Content: "", Style: style.Default()},
		{Content: "bad style", Style: bad},
		{Content: "svg", Style: style.Default(), Format: FormatSVG, Options: []Option{WithBackend(render.KindVector)}},
		{Content: "bitmap svg", Style: style.Default(), Format: FormatSVG},
	}
	results, err := RenderBatch(context.Background(), jobs, BatchOptions{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	wants := []error{nil, encode.ErrEmptyContent, style.ErrInvalidConfig, nil, ErrUnsupportedFormat}
	for i, want := range wants {
		r := results[i]
		if want == nil {
			if r.Err != nil || len(r.Data) == 0 {
				t.Errorf("job %d: err %v, %d bytes", i, r.Err, len(r.Data))
			}
			continue
		}
		if !errors.Is(r.Err, want) {
			t.Errorf("job %d: error = %v, want %v", i, r.Err, want)
		}
	}
	if !bytes.HasPrefix(results[3].Data, []byte("<svg")) {
		t.Error("vector job did not produce SVG")
	}
}

func TestRenderBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{Content: "a", Style: style.Default()}, {Content: "b", Style: style.Default()}}
	results, err := RenderBatch(ctx, jobs, BatchOptions{Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderBatch error = %v, want context.Canceled", err)
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("job %d: error = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestRenderBatchIgnoresContainer(t *testing.T) {
	c := &testContainer{}
	jobs := []Job{{Content: "a", Style: style.Default(), Options: []Option{WithContainer(c)}}}
	results, err := RenderBatch(context.Background(), jobs, BatchOptions{})
	if err != nil || results[0].Err != nil {
		t.Fatalf("RenderBatch: %v, %v", err, results[0].Err)
	}
	if c.len() != 0 {
		t.Error("batch job mounted an element")
	}
}

func TestRenderBatchEmpty(t *testing.T) {
	results, err := RenderBatch(context.Background(), nil, BatchOptions{})
	if err != nil || len(results) != 0 {
		t.Errorf("RenderBatch(nil) = %v, %v", results, err)
	}
}

func BenchmarkRenderBatch(b *testing.B) {
	jobs := make([]Job, 16)
	for i := range jobs {
		jobs[i] = Job{Content: fmt.Sprintf("https://gogpu.dev/%d", i), Style: style.Default()}
	}
	ctx := context.Background()

	for b.Loop() {
		if _, err := RenderBatch(ctx, jobs, BatchOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

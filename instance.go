// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggqr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggqr/encode"
	"github.com/gogpu/ggqr/render"
	_ "github.com/gogpu/ggqr/render/raster" // bitmap backend
	_ "github.com/gogpu/ggqr/render/vector" // vector backend
	"github.com/gogpu/ggqr/style"
	"github.com/gogpu/ggqr/transform"
)

// Instance is a rendered QR code. It owns its surface from New until
// Destroy.
type Instance struct {
	// mu serializes the methods of Instance so Destroy is reported reliably
	// even when it races with other calls. destroyed is also read by the
	// element, which must not take mu: containers may call back into the
	// element from Append and Remove.
	mu        sync.Mutex
	destroyed atomic.Bool

	content string
	cfg     style.Config
	matrix  encode.Matrix
	opts    options

	backend render.Backend
	elem    *Element
	mounted Container
}

// New encodes content, renders it with cfg and returns the instance.
// cfg is copied; later changes to it have no effect.
//
// Invalid configurations fail with style.ErrInvalidConfig, unknown or
// uninitialized backends with render.ErrUnavailable. A logo that cannot be
// loaded is logged and left out.
func New(content string, cfg style.Config, opts ...Option) (*Instance, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.encoder == nil {
		o.encoder = encode.Default()
	}

	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = loadLogo(cfg)

	m, err := o.encoder.Encode(content, cfg.Level)
	if err != nil {
		return nil, err
	}
	plan, err := style.Resolve(cfg, m)
	if err != nil {
		return nil, err
	}

	b, err := render.New(o.kind)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		content: content,
		cfg:     cfg,
		matrix:  m,
		opts:    o,
		backend: b,
	}
	inst.elem = &Element{inst: inst}

	if err := inst.draw(plan); err != nil {
		_ = b.Close()
		return nil, err
	}
	if o.container != nil {
		if err := inst.Mount(o.container); err != nil {
			_ = inst.Destroy()
			return nil, err
		}
	}

	Logger().Info("ggqr: instance created",
		"backend", b.Kind(),
		"version", m.Version(),
		"modules", m.Size(),
		"size", cfg.Size)
	return inst, nil
}

// UpdateStyle applies p and redraws the element in place. The update is
// atomic: if the new style is invalid, the instance keeps its previous
// style and contents. Changing the error correction level re-encodes the
// content.
func (i *Instance) UpdateStyle(p style.Patch) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return ErrDestroyed
	}

	next := i.cfg.Apply(p)
	if err := next.Validate(); err != nil {
		return err
	}
	next = loadLogo(next)

	m := i.matrix
	if next.Level != i.cfg.Level {
		var err error
		if m, err = i.opts.encoder.Encode(i.content, next.Level); err != nil {
			return err
		}
	}
	plan, err := style.Resolve(next, m)
	if err != nil {
		return err
	}

	if err := i.draw(plan); err != nil {
		// Put the previous contents back.
		if prev, perr := style.Resolve(i.cfg, i.matrix); perr == nil {
			_ = i.draw(prev)
		}
		return err
	}
	i.cfg, i.matrix = next, m
	return nil
}

// Element returns the instance's element. The same *Element is returned for
// the instance's whole life.
func (i *Instance) Element() (*Element, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return nil, ErrDestroyed
	}
	return i.elem, nil
}

// Export encodes the current surface in format f.
func (i *Instance) Export(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := i.ExportTo(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTo writes the current surface to w in format f. Raster formats
// rasterize vector surfaces; SVG needs a vector surface.
func (i *Instance) ExportTo(w io.Writer, f Format) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return ErrDestroyed
	}

	kind := i.backend.Kind()
	if f == FormatSVG {
		mb, ok := i.backend.(render.MarkupBackend)
		if !ok {
			return fmt.Errorf("%w: %s backend cannot export %s", ErrUnsupportedFormat, kind, f)
		}
		_, err := mb.WriteTo(w)
		return err
	}
	if !f.Raster() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	ib, ok := i.backend.(render.ImageBackend)
	if !ok {
		return fmt.Errorf("%w: %s backend cannot export %s", ErrUnsupportedFormat, kind, f)
	}
	img, err := ib.Image()
	if err != nil {
		return err
	}
	return encodeImage(w, img, f, i.opts.jpegQuality)
}

// Mount appends the element to c, detaching it from any previous
// container first.
func (i *Instance) Mount(c Container) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return ErrDestroyed
	}
	if c == i.mounted {
		return nil
	}
	if i.mounted != nil {
		if err := i.mounted.Remove(i.elem); err != nil {
			return fmt.Errorf("ggqr: detach: %w", err)
		}
		i.mounted = nil
	}
	if err := c.Append(i.elem); err != nil {
		return fmt.Errorf("ggqr: mount: %w", err)
	}
	i.mounted = c
	return nil
}

// Destroy detaches the element from its container and releases the
// surface. Every later call on the instance or its element fails with
// ErrDestroyed, including a second Destroy.
func (i *Instance) Destroy() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return ErrDestroyed
	}
	i.destroyed.Store(true)

	var errs []error
	if i.mounted != nil {
		if err := i.mounted.Remove(i.elem); err != nil {
			errs = append(errs, fmt.Errorf("ggqr: detach: %w", err))
		}
		i.mounted = nil
	}
	if err := i.backend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("ggqr: release surface: %w", err))
	}

	Logger().Info("ggqr: instance destroyed", "backend", i.backend.Kind())
	return errors.Join(errs...)
}

// Content returns the encoded content.
func (i *Instance) Content() string {
	if i.destroyed.Load() {
		return ""
	}
	return i.content
}

// Style returns a copy of the active style.
func (i *Instance) Style() style.Config {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return style.Config{}
	}
	return i.cfg.Clone()
}

// Matrix returns the module matrix being drawn.
func (i *Instance) Matrix() encode.Matrix {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed.Load() {
		return encode.Matrix{}
	}
	return i.matrix
}

// draw renders plan under the configured projection and records the
// element geometry.
func (i *Instance) draw(plan *style.Plan) error {
	tr := gg.Identity()
	css := ""
	if i.opts.project != nil {
		c := capture{m: gg.Identity()}
		m4 := i.opts.project(&c, float64(plan.Width), float64(plan.Height))
		tr = c.m
		if !m4.IsIdentity() {
			css = m4.CSS()
		}
	}
	if err := render.Execute(i.backend, plan, tr); err != nil {
		return err
	}
	i.elem.setGeometry(plan.Width, plan.Height, css)
	return nil
}

// loadLogo loads the logo image of cfg. A logo that fails to load is
// dropped with a warning.
func loadLogo(cfg style.Config) style.Config {
	loaded, err := style.LoadLogo(cfg)
	if err != nil {
		Logger().Warn("ggqr: logo not drawn", "source", cfg.Logo.Source, "err", err)
		cfg = cfg.Clone()
		cfg.Logo = nil
		return cfg
	}
	return loaded
}

// capture records the transform a projection helper sets.
type capture struct {
	m gg.Matrix
}

func (c *capture) SetTransform(m gg.Matrix) {
	c.m = m
}

var _ transform.Transformer = (*capture)(nil)

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/ggqr/encode"
)

// ErrInvalidConfig is returned for configurations that cannot be rendered.
// Errors carry the offending field in their message.
var ErrInvalidConfig = errors.New("style: invalid configuration")

// DotStyle selects the shape drawn for each dark module.
type DotStyle string

// Dot styles.
const (
	Square        DotStyle = "square"
	Rounded       DotStyle = "rounded"
	Dot           DotStyle = "dot"
	Classy        DotStyle = "classy"
	ClassyRounded DotStyle = "classy-rounded"
	ExtraRounded  DotStyle = "extra-rounded"
)

// DotStyles lists all dot styles.
var DotStyles = []DotStyle{Square, Rounded, Dot, Classy, ClassyRounded, ExtraRounded}

// Valid reports whether s is a known dot style.
func (s DotStyle) Valid() bool {
	return slices.Contains(DotStyles, s)
}

// GradientType selects linear or radial gradients.
type GradientType string

// Gradient types.
const (
	Linear GradientType = "linear"
	Radial GradientType = "radial"
)

// Stop is one gradient color stop.
type Stop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// Gradient replaces the flat foreground with a gradient spanning the QR
// bounds. Linear gradients run along Angle (degrees, 0 is left to right,
// 90 is top to bottom); radial gradients are centered on the bounds.
type Gradient struct {
	Type  GradientType `yaml:"type"`
	Angle float64      `yaml:"angle,omitempty"`
	Stops []Stop       `yaml:"stops"`
}

func (g Gradient) clone() *Gradient {
	g.Stops = slices.Clone(g.Stops)
	return &g
}

// Logo is an image overlaid at the center of the code.
type Logo struct {
	// Image is drawn as is. If nil, Source is loaded by LoadLogo.
	Image image.Image `yaml:"-"`

	// Source is a path to a PNG, JPEG, GIF, BMP, TIFF, WebP or SVG file.
	Source string `yaml:"source,omitempty"`

	// Size is the logo side as a fraction of the image side, in (0, 1).
	Size float64 `yaml:"size"`

	// Margin widens the exclusion zone by this many modules on each side.
	Margin int `yaml:"margin,omitempty"`

	// KeepModules draws modules under the logo instead of clearing them.
	KeepModules bool `yaml:"keepModules,omitempty"`
}

// Config is a complete style description. It is a value type; Clone before
// sharing a Config whose Gradient or Logo will be modified.
type Config struct {
	Size       int    `yaml:"size"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`

	DotStyle     DotStyle `yaml:"dotStyle"`
	CornerRadius float64  `yaml:"cornerRadius"`

	// Margin is the quiet zone around the symbol, in modules.
	Margin int `yaml:"margin"`

	Gradient *Gradient `yaml:"gradient,omitempty"`
	Logo     *Logo     `yaml:"logo,omitempty"`

	Level encode.Level `yaml:"level"`

	// EyeStyle and EyeColor restyle the three finder patterns. Empty means
	// "same as the other modules". EyeStyle accepts square, rounded and dot.
	EyeStyle DotStyle `yaml:"eyeStyle,omitempty"`
	EyeColor string   `yaml:"eyeColor,omitempty"`
}

// Default returns the default style: 256 px, black on white, square dots,
// four module quiet zone, error correction M.
func Default() Config {
	return Config{
		Size:         256,
		Foreground:   "#000000",
		Background:   "#ffffff",
		DotStyle:     Square,
		CornerRadius: 0.5,
		Margin:       4,
		Level:        encode.LevelM,
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	if c.Gradient != nil {
		c.Gradient = c.Gradient.clone()
	}
	if c.Logo != nil {
		l := *c.Logo
		c.Logo = &l
	}
	return c
}

// Validate checks every field that does not depend on the module matrix.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, c.Size)
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if !c.DotStyle.Valid() {
		return fmt.Errorf("%w: unknown dot style %q", ErrInvalidConfig, c.DotStyle)
	}
	if math.IsNaN(c.CornerRadius) || c.CornerRadius < 0 || c.CornerRadius > 1 {
		return fmt.Errorf("%w: corner radius %v outside [0, 1]", ErrInvalidConfig, c.CornerRadius)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: margin %d is negative", ErrInvalidConfig, c.Margin)
	}
	if !c.Level.Valid() {
		return fmt.Errorf("%w: error correction level %d", ErrInvalidConfig, int(c.Level))
	}
	if c.Gradient != nil {
		if err := c.Gradient.validate(); err != nil {
			return err
		}
	}
	if c.Logo != nil {
		if err := c.Logo.validate(); err != nil {
			return err
		}
	}
	switch c.EyeStyle {
	case "", Square, Rounded, Dot:
	default:
		return fmt.Errorf("%w: eye style %q (want square, rounded or dot)", ErrInvalidConfig, c.EyeStyle)
	}
	if c.EyeColor != "" {
		if _, err := ParseColor(c.EyeColor); err != nil {
			return fmt.Errorf("eye color: %w", err)
		}
	}
	return nil
}

// ValidateFor additionally checks that a matrix of n×n modules fits: the
// image must give every module, quiet zone included, at least one pixel.
func (c Config) ValidateFor(n int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if need := n + 2*c.Margin; c.Size < need {
		return fmt.Errorf("%w: size %d too small for %d modules plus margin %d (need %d)",
			ErrInvalidConfig, c.Size, n, c.Margin, need)
	}
	return nil
}

func (g *Gradient) validate() error {
	switch g.Type {
	case Linear, Radial:
	default:
		return fmt.Errorf("%w: gradient type %q", ErrInvalidConfig, g.Type)
	}
	if math.IsNaN(g.Angle) || math.IsInf(g.Angle, 0) {
		return fmt.Errorf("%w: gradient angle %v", ErrInvalidConfig, g.Angle)
	}
	if len(g.Stops) < 2 {
		return fmt.Errorf("%w: gradient needs at least 2 stops, got %d", ErrInvalidConfig, len(g.Stops))
	}
	for i, s := range g.Stops {
		if math.IsNaN(s.Offset) || s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("%w: gradient stop %d offset %v outside [0, 1]", ErrInvalidConfig, i, s.Offset)
		}
		if _, err := ParseColor(s.Color); err != nil {
			return fmt.Errorf("gradient stop %d: %w", i, err)
		}
	}
	return nil
}

func (l *Logo) validate() error {
	if math.IsNaN(l.Size) || l.Size <= 0 || l.Size >= 1 {
		return fmt.Errorf("%w: logo size %v outside (0, 1)", ErrInvalidConfig, l.Size)
	}
	if l.Margin < 0 {
		return fmt.Errorf("%w: logo margin %d is negative", ErrInvalidConfig, l.Margin)
	}
	if l.Image == nil && l.Source == "" {
		return fmt.Errorf("%w: logo has neither image nor source", ErrInvalidConfig)
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Size         *int
	Foreground   *string
	Background   *string
	DotStyle     *DotStyle
	CornerRadius *float64
	Margin       *int
	Level        *encode.Level
	EyeStyle     *DotStyle
	EyeColor     *string

	// Gradient replaces the gradient; ClearGradient removes it.
	Gradient      *Gradient
	ClearGradient bool

	// Logo replaces the logo; ClearLogo removes it.
	Logo      *Logo
	ClearLogo bool
}

// Apply returns a copy of c with p applied. c is not modified.
func (c Config) Apply(p Patch) Config {
	c = c.Clone()
	setIf(&c.Size, p.Size)
	setIf(&c.Foreground, p.Foreground)
	setIf(&c.Background, p.Background)
	setIf(&c.DotStyle, p.DotStyle)
	setIf(&c.CornerRadius, p.CornerRadius)
	setIf(&c.Margin, p.Margin)
	setIf(&c.Level, p.Level)
	setIf(&c.EyeStyle, p.EyeStyle)
	setIf(&c.EyeColor, p.EyeColor)

	switch {
	case p.ClearGradient:
		c.Gradient = nil
	case p.Gradient != nil:
		c.Gradient = p.Gradient.clone()
	}
	switch {
	case p.ClearLogo:
		c.Logo = nil
	case p.Logo != nil:
		l := *p.Logo
		c.Logo = &l
	}
	return c
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

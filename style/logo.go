// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // logo decoders
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/ggqr/internal/svgraster"
)

// LoadLogo returns cfg with its logo image decoded from Logo.Source. Configs
// without a logo, or whose logo already has an Image, are returned as is.
// SVG logos are rasterized at the pixel size the logo will be drawn at.
func LoadLogo(cfg Config) (Config, error) {
	if cfg.Logo == nil || cfg.Logo.Image != nil {
		return cfg, nil
	}
	if cfg.Logo.Source == "" {
		return cfg, fmt.Errorf("%w: logo has neither image nor source", ErrInvalidConfig)
	}
	side := int(math.Ceil(cfg.Logo.Size * float64(cfg.Size)))
	img, err := decodeLogo(cfg.Logo.Source, side)
	if err != nil {
		return cfg, fmt.Errorf("style: load logo %q: %w", cfg.Logo.Source, err)
	}
	cfg = cfg.Clone()
	cfg.Logo.Image = img
	return cfg, nil
}

func decodeLogo(path string, side int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isSVG(path, data) {
		return svgraster.Decode(bytes.NewReader(data), side, side)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func isSVG(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return true
	}
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg"))
}

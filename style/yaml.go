// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML style document over the defaults. Unknown keys are
// rejected. The result is validated.
//
//	size: 512
//	foreground: "#1a1a2e"
//	dotStyle: classy-rounded
//	gradient:
//	  type: linear
//	  angle: 45
//	  stops:
//	    - {offset: 0, color: "#0f3460"}
//	    - {offset: 1, color: "#e94560"}
//	level: H
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML style file at path. A relative logo source is
// resolved against the file's directory.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Logo != nil && cfg.Logo.Source != "" && !filepath.IsAbs(cfg.Logo.Source) {
		cfg.Logo.Source = filepath.Join(filepath.Dir(path), cfg.Logo.Source)
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

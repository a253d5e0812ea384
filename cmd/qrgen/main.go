// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command qrgen renders styled QR codes.
//
// Usage:
//
//	qrgen [flags] content...
//
// One content string is written to -o (default qr.png). Several, or a
// -list file with one content per line, are rendered in parallel into the
// directory named by -o as qr-001.png, qr-002.png and so on.
//
// Defaults come from the environment, or a .env file in the working
// directory:
//
//	QRGEN_STYLE         YAML style file
//	QRGEN_BACKEND       bitmap, vector or gpu
//	QRGEN_FORMAT        png, jpeg, bmp, tiff or svg
//	QRGEN_ENCODER       qrcode or rsc
//	QRGEN_WORKERS       parallel renders for batches
//	QRGEN_JPEG_QUALITY  1 to 100
//	QRGEN_VERBOSE       log debug output
//
// The gpu backend is linked in unless qrgen is built with -tags nogpu.
// gg's accelerator is process-wide, so while it is linked in the bitmap
// backend draws through the GPU as well when an adapter is present.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/gogpu/ggqr"
	"github.com/gogpu/ggqr/encode"
	"github.com/gogpu/ggqr/render"
	"github.com/gogpu/ggqr/style"
	"github.com/gogpu/ggqr/transform"
)

// envConfig holds the defaults read from the environment.
type envConfig struct {
	Style       string `env:"QRGEN_STYLE"`
	Backend     string `env:"QRGEN_BACKEND" envDefault:"bitmap"`
	Format      string `env:"QRGEN_FORMAT"`
	Encoder     string `env:"QRGEN_ENCODER" envDefault:"qrcode"`
	Workers     int    `env:"QRGEN_WORKERS"`
	JPEGQuality int    `env:"QRGEN_JPEG_QUALITY" envDefault:"90"`
	Verbose     bool   `env:"QRGEN_VERBOSE"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "qrgen:", err)
		os.Exit(1)
	}
}

// cli is the parsed command line.
type cli struct {
	env envConfig

	output    string
	list      string
	printOnly bool

	size         int
	fg, bg       string
	dots         string
	eyes         string
	eyeColor     string
	radius       float64
	margin       int
	level        string
	logo         string
	logoSize     float64
	isometric    bool
	rotateX      float64
	rotateY      float64
	perspective  float64
	explicitFlag map[string]bool
}

func parseArgs(args []string, stderr io.Writer) (*cli, []string, error) {
	c := &cli{}
	if err := env.Parse(&c.env); err != nil {
		return nil, nil, fmt.Errorf("environment: %w", err)
	}

	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.env.Style, "style", c.env.Style, "YAML style file")
	fs.StringVar(&c.env.Backend, "backend", c.env.Backend, "surface: bitmap, vector or gpu")
	fs.StringVar(&c.env.Format, "format", c.env.Format, "output format (default from -o, else png)")
	fs.StringVar(&c.env.Encoder, "encoder", c.env.Encoder, "QR encoder: "+strings.Join(encode.Names(), ", "))
	fs.IntVar(&c.env.Workers, "workers", c.env.Workers, "parallel renders for batches (0 = all CPUs)")
	fs.IntVar(&c.env.JPEGQuality, "quality", c.env.JPEGQuality, "JPEG quality")
	fs.BoolVar(&c.env.Verbose, "v", c.env.Verbose, "verbose logging")

	fs.StringVar(&c.output, "o", "", "output file, or directory for several codes")
	fs.StringVar(&c.list, "list", "", "file with one content per line")
	fs.BoolVar(&c.printOnly, "print-style", false, "print the resolved style as YAML and exit")

	fs.IntVar(&c.size, "size", 0, "image side in pixels")
	fs.StringVar(&c.fg, "fg", "", "module color")
	fs.StringVar(&c.bg, "bg", "", "background color")
	fs.StringVar(&c.dots, "dots", "", "dot style: square, rounded, dot, classy, classy-rounded, extra-rounded")
	fs.StringVar(&c.eyes, "eyes", "", "finder pattern style: square, rounded, dot")
	fs.StringVar(&c.eyeColor, "eye-color", "", "finder pattern color")
	fs.Float64Var(&c.radius, "radius", 0, "corner radius for rounded styles, 0 to 1")
	fs.IntVar(&c.margin, "margin", 0, "quiet zone in modules")
	fs.StringVar(&c.level, "level", "", "error correction level: L, M, Q, H")
	fs.StringVar(&c.logo, "logo", "", "logo image file (PNG, JPEG, GIF, BMP, TIFF, WebP or SVG)")
	fs.Float64Var(&c.logoSize, "logo-size", 0.2, "logo side as a fraction of the image side")
	fs.BoolVar(&c.isometric, "isometric", false, "draw in isometric view")
	fs.Float64Var(&c.rotateX, "rotate-x", 0, "3D rotation about X in degrees")
	fs.Float64Var(&c.rotateY, "rotate-y", 0, "3D rotation about Y in degrees")
	fs.Float64Var(&c.perspective, "perspective", 0, "viewer distance in pixels for 3D rotation")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	c.explicitFlag = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.explicitFlag[f.Name] = true })
	return c, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c, contents, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.env.Verbose {
		level = slog.LevelDebug
	}
	ggqr.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := c.style()
	if err != nil {
		return err
	}
	if c.printOnly {
		return style.Encode(stdout, cfg)
	}

	if c.list != "" {
		lines, err := readList(c.list)
		if err != nil {
			return err
		}
		contents = append(contents, lines...)
	}
	if len(contents) == 0 {
		return errors.New("nothing to encode: pass content arguments or -list")
	}

	opts, err := c.options()
	if err != nil {
		return err
	}
	format, err := c.format(len(contents))
	if err != nil {
		return err
	}

	if len(contents) == 1 && c.list == "" {
		out := c.output
		if out == "" {
			out = "qr" + format.Extension()
		}
		return renderOne(contents[0], cfg, format, out, opts)
	}
	return renderMany(ctx, contents, cfg, format, c.output, c.env.Workers, opts, stdout)
}

// style builds the style from the style file and the flags given.
func (c *cli) style() (style.Config, error) {
	cfg := style.Default()
	if c.env.Style != "" {
		var err error
		if cfg, err = style.LoadFile(c.env.Style); err != nil {
			return cfg, err
		}
	}

	var p style.Patch
	if c.explicitFlag["size"] {
		p.Size = &c.size
	}
	if c.explicitFlag["fg"] {
		p.Foreground = &c.fg
	}
	if c.explicitFlag["bg"] {
		p.Background = &c.bg
	}
	if c.explicitFlag["dots"] {
		d := style.DotStyle(c.dots)
		p.DotStyle = &d
	}
	if c.explicitFlag["eyes"] {
		d := style.DotStyle(c.eyes)
		p.EyeStyle = &d
	}
	if c.explicitFlag["eye-color"] {
		p.EyeColor = &c.eyeColor
	}
	if c.explicitFlag["radius"] {
		p.CornerRadius = &c.radius
	}
	if c.explicitFlag["margin"] {
		p.Margin = &c.margin
	}
	if c.explicitFlag["level"] {
		l, err := encode.ParseLevel(c.level)
		if err != nil {
			return cfg, err
		}
		p.Level = &l
	}
	if c.logo != "" {
		p.Logo = &style.Logo{Source: c.logo, Size: c.logoSize, Margin: 1}
	}

	cfg = cfg.Apply(p)
	return cfg, cfg.Validate()
}

func (c *cli) options() ([]ggqr.Option, error) {
	kind, err := render.ParseKind(c.env.Backend)
	if err != nil {
		return nil, err
	}
	enc, err := encode.ByName(c.env.Encoder)
	if err != nil {
		return nil, err
	}
	opts := []ggqr.Option{
		ggqr.WithBackend(kind),
		ggqr.WithEncoder(encode.NewCachingEncoder(encode.Normalized(enc), 0)),
		ggqr.WithJPEGQuality(c.env.JPEGQuality),
	}
	switch {
	case c.isometric:
		opts = append(opts, ggqr.WithIsometric(transform.IsometricAngle))
	case c.rotateX != 0 || c.rotateY != 0:
		opts = append(opts, ggqr.With3D(transform.Options3D{
			RotateX:     c.rotateX,
			RotateY:     c.rotateY,
			Perspective: c.perspective,
		}))
	}
	return opts, nil
}

// format picks the output format: -format, then the -o extension for a
// single code, then PNG.
func (c *cli) format(n int) (ggqr.Format, error) {
	if c.env.Format != "" {
		return ggqr.ParseFormat(c.env.Format)
	}
	if n == 1 && c.list == "" && c.output != "" {
		if f, err := ggqr.FormatFromPath(c.output); err == nil {
			return f, nil
		}
	}
	return ggqr.FormatPNG, nil
}

func renderOne(content string, cfg style.Config, f ggqr.Format, path string, opts []ggqr.Option) error {
	qr, err := ggqr.New(content, cfg, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = qr.Destroy() }()

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := qr.ExportTo(file, f); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	return file.Close()
}

func renderMany(ctx context.Context, contents []string, cfg style.Config, f ggqr.Format,
	dir string, workers int, opts []ggqr.Option, stdout io.Writer) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	jobs := make([]ggqr.Job, len(contents))
	for i, content := range contents {
		jobs[i] = ggqr.Job{Content: content, Style: cfg, Options: opts}
	}
	results, err := ggqr.RenderBatch(ctx, jobs, ggqr.BatchOptions{Workers: workers, Format: f})

	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", r.Index+1, r.Err))
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("qr-%03d%s", r.Index+1, r.Format.Extension()))
		if err := os.WriteFile(path, r.Data, 0o644); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(stdout, path)
	}
	return errors.Join(errs...)
}

// readList returns the non-blank lines of path.
func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, s.Err()
}

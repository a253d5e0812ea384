// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggqr/encode"
)

// parseMatrix builds a matrix from '#' and '.' rows.
func parseMatrix(t testing.TB, rows ...string) encode.Matrix {
	t.Helper()
	grid := make([][]bool, len(rows))
	for r, row := range rows {
		grid[r] = make([]bool, len(row))
		for c := range row {
			grid[r][c] = row[c] == '#'
		}
	}
	m, err := encode.NewMatrix(grid)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func encodeMatrix(t testing.TB, content string, level encode.Level) encode.Matrix {
	t.Helper()
	m, err := encode.NewQRCodeEncoder().Encode(content, level)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func testLogo() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, a    float64
		wantErr bool
	}{
		{"#fff", 1, 1, false},
		{"000", 0, 1, false},
		{"#ff000080", 1, 128.0 / 255, false},
		{"#FF0000", 1, 1, false},
		{"transparent", 0, 0, false},
		{"", 0, 0, true},
		{"#12345", 0, 0, true},
		{"#gggggg", 0, 0, true},
		{"red", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(c.R-tt.r) > 1e-9 || math.Abs(c.A-tt.a) > 1e-9 {
				t.Errorf("ParseColor(%q) = %+v", tt.in, c)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"negative size", func(c *Config) { c.Size = -1 }, false},
		{"zero size", func(c *Config) { c.Size = 0 }, false},
		{"radius below zero", func(c *Config) { c.CornerRadius = -0.1 }, false},
		{"radius above one", func(c *Config) { c.CornerRadius = 1.5 }, false},
		{"radius one", func(c *Config) { c.CornerRadius = 1 }, true},
		{"radius NaN", func(c *Config) { c.CornerRadius = math.NaN() }, false},
		{"bad foreground", func(c *Config) { c.Foreground = "#xyz" }, false},
		{"bad background", func(c *Config) { c.Background = "" }, false},
		{"unknown dot style", func(c *Config) { c.DotStyle = "hexagon" }, false},
		{"negative margin", func(c *Config) { c.Margin = -1 }, false},
		{"bad level", func(c *Config) { c.Level = 9 }, false},
		{"gradient one stop", func(c *Config) {
			c.Gradient = &Gradient{Type: Linear, Stops: []Stop{{0, "#000"}}}
		}, false},
		{"gradient bad type", func(c *Config) {
			c.Gradient = &Gradient{Type: "conic", Stops: []Stop{{0, "#000"}, {1, "#fff"}}}
		}, false},
		{"gradient offset out of range", func(c *Config) {
			c.Gradient = &Gradient{Type: Radial, Stops: []Stop{{0, "#000"}, {1.2, "#fff"}}}
		}, false},
		{"gradient bad color", func(c *Config) {
			c.Gradient = &Gradient{Type: Radial, Stops: []Stop{{0, "#000"}, {1, "white"}}}
		}, false},
		{"gradient ok", func(c *Config) {
			c.Gradient = &Gradient{Type: Linear, Angle: 45, Stops: []Stop{{0, "#000"}, {1, "#fff"}}}
		}, true},
		{"logo zero size", func(c *Config) { c.Logo = &Logo{Image: testLogo()} }, false},
		{"logo full size", func(c *Config) { c.Logo = &Logo{Image: testLogo(), Size: 1} }, false},
		{"logo without image", func(c *Config) { c.Logo = &Logo{Size: 0.2} }, false},
		{"logo negative margin", func(c *Config) { c.Logo = &Logo{Image: testLogo(), Size: 0.2, Margin: -1} }, false},
		{"logo ok", func(c *Config) { c.Logo = &Logo{Source: "logo.png", Size: 0.2} }, true},
		{"eye style classy", func(c *Config) { c.EyeStyle = Classy }, false},
		{"eye style dot", func(c *Config) { c.EyeStyle = Dot }, true},
		{"bad eye color", func(c *Config) { c.EyeColor = "#12" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateForMatrixSize(t *testing.T) {
	cfg := Default()
	cfg.Margin = 2
	cfg.Size = 25 // 21 + 2*2
	if err := cfg.ValidateFor(21); err != nil {
		t.Errorf("exact fit rejected: %v", err)
	}
	cfg.Size = 24
	if err := cfg.ValidateFor(21); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ValidateFor = %v, want ErrInvalidConfig", err)
	}
}

func TestApplyPatch(t *testing.T) {
	base := Default()
	base.Gradient = &Gradient{Type: Linear, Stops: []Stop{{0, "#000"}, {1, "#fff"}}}

	size := 512
	dot := Dot
	got := base.Apply(Patch{Size: &size, DotStyle: &dot})

	if got.Size != 512 || got.DotStyle != Dot {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.Foreground != base.Foreground || got.Margin != base.Margin {
		t.Error("unpatched fields changed")
	}
	if base.Size != 256 || base.DotStyle != Square {
		t.Error("Apply modified the receiver")
	}
	got.Gradient.Stops[0].Color = "#f00"
	if base.Gradient.Stops[0].Color != "#000" {
		t.Error("Apply shares gradient stops with the receiver")
	}

	cleared := base.Apply(Patch{ClearGradient: true})
	if cleared.Gradient != nil {
		t.Error("ClearGradient did not remove the gradient")
	}

	withLogo := base.Apply(Patch{Logo: &Logo{Image: testLogo(), Size: 0.2}})
	if withLogo.Logo == nil || base.Logo != nil {
		t.Error("Logo patch not applied to the copy only")
	}
	if noLogo := withLogo.Apply(Patch{ClearLogo: true}); noLogo.Logo != nil {
		t.Error("ClearLogo did not remove the logo")
	}
}

func TestClassify(t *testing.T) {
	m := parseMatrix(t,
		"#....",
		"..###",
		"..###",
		"..###",
		"#.#..",
	)
	tests := []struct {
		row, col int
		want     Variant
		corners  Corners
	}{
		{0, 0, Isolated, AllCorners},
		{0, 1, Light, NoCorners},
		{2, 3, Interior, NoCorners},
		{1, 2, Corner, TopLeft},
		{1, 3, Edge, NoCorners},
		{3, 4, Corner, BottomRight},
		{4, 2, Corner, BottomLeft | BottomRight},
		{9, 9, Light, NoCorners},
	}
	for _, tt := range tests {
		if got := Classify(m, tt.row, tt.col); got != tt.want {
			t.Errorf("Classify(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
		if got := ExposedCorners(m, tt.row, tt.col); got != tt.corners {
			t.Errorf("ExposedCorners(%d, %d) = %04b, want %04b", tt.row, tt.col, got, tt.corners)
		}
	}
}

func TestClassifyMirrorSymmetry(t *testing.T) {
	m := encodeMatrix(t, "mirror", encode.LevelM)
	n := m.Size()
	rows := m.Rows()
	mirrored := make([][]bool, n)
	for r := range rows {
		mirrored[r] = make([]bool, n)
		for c := range rows[r] {
			mirrored[r][n-1-c] = rows[r][c]
		}
	}
	mm, err := encode.NewMatrix(mirrored)
	if err != nil {
		t.Fatal(err)
	}

	swap := map[Corners]Corners{
		TopLeft: TopRight, TopRight: TopLeft,
		BottomLeft: BottomRight, BottomRight: BottomLeft,
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if a, b := Classify(m, r, c), Classify(mm, r, n-1-c); a != b {
				t.Fatalf("(%d,%d): %v vs mirrored %v", r, c, a, b)
			}
			var want Corners
			for from, to := range swap {
				if ExposedCorners(m, r, c).Has(from) {
					want |= to
				}
			}
			if got := ExposedCorners(mm, r, n-1-c); got != want {
				t.Fatalf("(%d,%d): mirrored corners %04b, want %04b", r, c, got, want)
			}
		}
	}
}

func TestResolveOpCount(t *testing.T) {
	m := encodeMatrix(t, "https://github.com/gogpu/ggqr", encode.LevelH)
	n := m.Size()

	for _, dot := range DotStyles {
		t.Run(string(dot), func(t *testing.T) {
			cfg := Default()
			cfg.DotStyle = dot
			plan, err := Resolve(cfg, m)
			if err != nil {
				t.Fatal(err)
			}
			if len(plan.Modules) != n*n {
				t.Errorf("ops = %d, want %d", len(plan.Modules), n*n)
			}
			if plan.DarkCount() != m.DarkCount() {
				t.Errorf("dark ops = %d, want %d", plan.DarkCount(), m.DarkCount())
			}
			for i, op := range plan.Modules {
				if op.Row != i/n || op.Col != i%n {
					t.Fatalf("op %d at (%d,%d), not row-major", i, op.Row, op.Col)
				}
				if op.Dark() != m.Dark(op.Row, op.Col) {
					t.Fatalf("op (%d,%d) dark = %v", op.Row, op.Col, op.Dark())
				}
			}
		})
	}
}

func TestResolveLogoExclusion(t *testing.T) {
	m := encodeMatrix(t, "logo", encode.LevelH)
	n := m.Size()

	cfg := Default()
	cfg.Logo = &Logo{Image: testLogo(), Size: 0.2, Margin: 1}
	plan, err := Resolve(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Modules) >= n*n {
		t.Fatalf("ops = %d, want fewer than %d", len(plan.Modules), n*n)
	}
	if plan.Logo == nil {
		t.Fatal("plan has no logo op")
	}
	center := n / 2
	for _, op := range plan.Modules {
		if op.Row == center && op.Col == center {
			t.Error("center module not excluded")
		}
	}
	wantSide := 0.2 * float64(cfg.Size)
	if math.Abs(plan.Logo.Size-wantSide) > 1e-9 || math.Abs(plan.Logo.X-(float64(cfg.Size)-wantSide)/2) > 1e-9 {
		t.Errorf("logo op = %+v", plan.Logo)
	}

	x, y, w, h := plan.Logo.Fit()
	if math.Abs(w-wantSide) > 1e-9 || math.Abs(h-wantSide/2) > 1e-9 || math.Abs(y-(plan.Logo.Y+wantSide/4)) > 1e-9 || math.Abs(x-plan.Logo.X) > 1e-9 {
		t.Errorf("Fit() = %v %v %v %v", x, y, w, h)
	}

	cfg.Logo.KeepModules = true
	kept, err := Resolve(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept.Modules) != n*n {
		t.Errorf("KeepModules ops = %d, want %d", len(kept.Modules), n*n)
	}
}

func TestResolveRequiresLoadedLogo(t *testing.T) {
	cfg := Default()
	cfg.Logo = &Logo{Source: "missing.png", Size: 0.2}
	if _, err := Resolve(cfg, encodeMatrix(t, "x", encode.LevelH)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestResolveRejectsSmallSize(t *testing.T) {
	m := encodeMatrix(t, "small", encode.LevelL)
	cfg := Default()
	cfg.Size = m.Size() + 2*cfg.Margin - 1
	if _, err := Resolve(cfg, m); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
	if _, err := Resolve(Default(), encode.Matrix{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty matrix error = %v", err)
	}
}

func TestResolveGeometry(t *testing.T) {
	m := encodeMatrix(t, "geometry", encode.LevelM)
	n := m.Size()
	cfg := Default()
	cfg.Size = (n + 8) * 10
	plan, err := Resolve(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ModuleSize != 10 {
		t.Errorf("ModuleSize = %v, want 10", plan.ModuleSize)
	}
	if plan.Bounds != (Box{X: 40, Y: 40, W: float64(n * 10), H: float64(n * 10)}) {
		t.Errorf("Bounds = %+v", plan.Bounds)
	}
	last := plan.Modules[len(plan.Modules)-1]
	if last.X != float64(40+(n-1)*10) || last.Y != last.X || last.Size != 10 {
		t.Errorf("last op = %+v", last)
	}
}

func TestResolveShapes(t *testing.T) {
	m := parseMatrix(t,
		".....",
		".#...",
		".....",
		".##..",
		".....",
	)
	cfg := Default()
	cfg.Size = 100
	cfg.Margin = 0
	cfg.CornerRadius = 0.5
	half := 10.0 // 100 px / 5 modules / 2

	shapeAt := func(dot DotStyle, row, col int) ModuleOp {
		c := cfg
		c.DotStyle = dot
		plan, err := Resolve(c, m)
		if err != nil {
			t.Fatal(err)
		}
		return plan.Modules[row*5+col]
	}

	tests := []struct {
		dot      DotStyle
		row, col int
		shape    Shape
		radii    Radii
	}{
		{Square, 1, 1, Rect, Radii{}},
		{Rounded, 1, 1, RoundRect, Radii{5, 5, 5, 5}},
		{Dot, 1, 1, Circle, Radii{half, half, half, half}},
		{ExtraRounded, 1, 1, Circle, Radii{half, half, half, half}},
		{ExtraRounded, 3, 1, RoundRect, Radii{half, 0, 0, half}},
		{Classy, 1, 1, RoundRect, Radii{half, 0, half, 0}},
		{Classy, 3, 1, RoundRect, Radii{half, 0, 0, 0}},
		{Classy, 3, 2, RoundRect, Radii{0, 0, half, 0}},
		{ClassyRounded, 3, 1, RoundRect, Radii{half, 0, 0, 5}},
		{ClassyRounded, 3, 2, RoundRect, Radii{0, 5, half, 0}},
		{Square, 0, 0, NoShape, Radii{}},
	}
	for _, tt := range tests {
		op := shapeAt(tt.dot, tt.row, tt.col)
		if op.Shape != tt.shape || op.Radii != tt.radii {
			t.Errorf("%s (%d,%d): shape %d radii %v, want %d %v", tt.dot, tt.row, tt.col, op.Shape, op.Radii, tt.shape, tt.radii)
		}
	}

	cfg.CornerRadius = 0
	if op := shapeAt(Rounded, 1, 1); op.Shape != Rect {
		t.Errorf("zero radius rounded = %d, want Rect", op.Shape)
	}
}

func TestResolveEyes(t *testing.T) {
	m := encodeMatrix(t, "eyes", encode.LevelM)
	n := m.Size()
	cfg := Default()
	cfg.DotStyle = Rounded
	cfg.EyeStyle = Square
	cfg.EyeColor = "#ff0000"
	plan, err := Resolve(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	if plan.EyeFill == nil || plan.EyeFill.Color.R != 1 {
		t.Fatalf("EyeFill = %+v", plan.EyeFill)
	}
	eyes := 0
	for _, op := range plan.Modules {
		if !op.Eye {
			continue
		}
		eyes++
		if op.Dark() && op.Shape != Rect {
			t.Fatalf("eye module (%d,%d) shape %d, want Rect", op.Row, op.Col, op.Shape)
		}
	}
	if eyes != 3*49 {
		t.Errorf("eye modules = %d, want %d", eyes, 3*49)
	}
	if plan.Modules[n*n-1].Eye {
		t.Error("bottom-right module marked as finder pattern")
	}
}

func TestResolveGradient(t *testing.T) {
	m := encodeMatrix(t, "gradient", encode.LevelM)
	cfg := Default()
	cfg.Gradient = &Gradient{Type: Linear, Angle: 0, Stops: []Stop{{0, "#000000"}, {1, "#ffffff"}}}
	plan, err := Resolve(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	b := plan.Bounds
	f := plan.Fill
	if f.Kind != LinearFill {
		t.Fatalf("Kind = %d", f.Kind)
	}
	if math.Abs(f.X0-b.X) > 1e-9 || math.Abs(f.X1-(b.X+b.W)) > 1e-9 || math.Abs(f.Y0-f.Y1) > 1e-9 {
		t.Errorf("linear 0deg spans (%v,%v)-(%v,%v), bounds %+v", f.X0, f.Y0, f.X1, f.Y1, b)
	}
	brush := f.Brush()
	if c := brush.ColorAt(b.X, b.Y); c.R > 0.01 {
		t.Errorf("start color = %+v, want black", c)
	}
	if c := brush.ColorAt(b.X+b.W, b.Y); c.R < 0.99 {
		t.Errorf("end color = %+v, want white", c)
	}

	cfg.Gradient = &Gradient{Type: Linear, Angle: 45, Stops: cfg.Gradient.Stops}
	plan, _ = Resolve(cfg, m)
	if math.Abs(plan.Fill.X0-b.X) > 1e-9 || math.Abs(plan.Fill.Y0-b.Y) > 1e-9 {
		t.Errorf("linear 45deg starts at (%v,%v), want top-left corner", plan.Fill.X0, plan.Fill.Y0)
	}

	cfg.Gradient = &Gradient{Type: Radial, Stops: cfg.Gradient.Stops}
	plan, _ = Resolve(cfg, m)
	if plan.Fill.Kind != RadialFill || plan.Fill.X0 != b.X+b.W/2 {
		t.Errorf("radial fill = %+v", plan.Fill)
	}
	if math.Abs(plan.Fill.R-math.Hypot(b.W, b.H)/2) > 1e-9 {
		t.Errorf("radial R = %v", plan.Fill.R)
	}
}

func TestResolveSolidFill(t *testing.T) {
	cfg := Default()
	cfg.Foreground = "#336699"
	plan, err := Resolve(cfg, encodeMatrix(t, "solid", encode.LevelL))
	if err != nil {
		t.Fatal(err)
	}
	if plan.Fill.Kind != SolidFill || plan.Fill.Brush().ColorAt(0, 0) != plan.Fill.Color {
		t.Errorf("fill = %+v", plan.Fill)
	}
	if plan.Background.R != 1 || plan.Background.A != 1 {
		t.Errorf("background = %+v", plan.Background)
	}
}

func TestResolveDoesNotMutateMatrix(t *testing.T) {
	m := encodeMatrix(t, "immutable", encode.LevelQ)
	before := m.String()
	cfg := Default()
	cfg.DotStyle = ClassyRounded
	cfg.Logo = &Logo{Image: testLogo(), Size: 0.25}
	if _, err := Resolve(cfg, m); err != nil {
		t.Fatal(err)
	}
	if m.String() != before {
		t.Error("matrix changed during Resolve")
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
size: 400
foreground: "#112233"
dotStyle: classy-rounded
cornerRadius: 0.3
gradient:
  type: radial
  stops:
    - {offset: 0, color: "#000"}
    - {offset: 1, color: "#f00"}
level: H
eyeStyle: dot
`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 400 || cfg.DotStyle != ClassyRounded || cfg.Level != encode.LevelH || cfg.EyeStyle != Dot {
		t.Errorf("decoded = %+v", cfg)
	}
	if cfg.Background != "#ffffff" || cfg.Margin != 4 {
		t.Error("defaults not kept for missing keys")
	}
	if cfg.Gradient == nil || len(cfg.Gradient.Stops) != 2 || cfg.Gradient.Type != Radial {
		t.Errorf("gradient = %+v", cfg.Gradient)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatal(err)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("re-decode: %v\n%s", err, buf.String())
	}
	if again.Size != cfg.Size || again.Level != cfg.Level || again.Gradient.Stops[1].Color != "#f00" {
		t.Errorf("re-decoded = %+v", again)
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key": "colour: red\n",
		"bad level":   "level: Z\n",
		"invalid":     "cornerRadius: 3\n",
		"bad syntax":  "size: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(doc)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
	if cfg, err := Decode(strings.NewReader("")); err != nil || cfg.Size != Default().Size {
		t.Errorf("empty document = %+v, %v", cfg, err)
	}
}

func TestLoadFileAndLogo(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), pngData.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 20"><rect width="10" height="20" fill="#00f"/></svg>`
	if err := os.WriteFile(filepath.Join(dir, "logo.svg"), []byte(svg), 0o600); err != nil {
		t.Fatal(err)
	}
	doc := "logo:\n  source: logo.png\n  size: 0.25\nlevel: H\n"
	path := filepath.Join(dir, "style.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logo.Source != filepath.Join(dir, "logo.png") {
		t.Errorf("logo source = %q", cfg.Logo.Source)
	}
	loaded, err := LoadLogo(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Logo.Image == nil || loaded.Logo.Image.Bounds().Dx() != 4 {
		t.Fatalf("png logo = %v", loaded.Logo.Image)
	}
	if cfg.Logo.Image != nil {
		t.Error("LoadLogo modified its argument")
	}

	cfg.Logo.Source = filepath.Join(dir, "logo.svg")
	loaded, err = LoadLogo(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// 0.25 * 256 = 64 px box, 1:2 aspect.
	if b := loaded.Logo.Image.Bounds(); b.Dx() != 32 || b.Dy() != 64 {
		t.Errorf("svg logo bounds = %v, want 32x64", b)
	}

	cfg.Logo.Source = filepath.Join(dir, "nope.png")
	if _, err := LoadLogo(cfg); err == nil {
		t.Error("missing logo file loaded")
	}
}

func BenchmarkResolve(b *testing.B) {
	m := encodeMatrix(b, strings.Repeat("bench", 40), encode.LevelH)
	cfg := Default()
	cfg.Size = 1024
	cfg.DotStyle = ClassyRounded
	for b.Loop() {
		if _, err := Resolve(cfg, m); err != nil {
			b.Fatal(err)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"inside", Box{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Box{X: 9, Y: 9, W: 5, H: 5}, true},
		{"touching edge", Box{X: 10, Y: 0, W: 5, H: 10}, false},
		{"apart", Box{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reversed Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveRecordsVariant(t *testing.T) {
	m := encodeMatrix(t, "variants", encode.LevelM)
	for _, dot := range []DotStyle{Classy, ClassyRounded, ExtraRounded} {
		t.Run(string(dot), func(t *testing.T) {
			cfg := Default()
			cfg.DotStyle = dot
			plan, err := Resolve(cfg, m)
			if err != nil {
				t.Fatal(err)
			}
			for _, op := range plan.Modules {
				if want := Classify(m, op.Row, op.Col); op.Variant != want {
					t.Fatalf("(%d,%d) variant %v, want %v", op.Row, op.Col, op.Variant, want)
				}
				switch op.Variant {
				case Light:
					if op.Dark() {
						t.Fatalf("(%d,%d) light module has shape %d", op.Row, op.Col, op.Shape)
					}
				case Interior, Edge:
					if op.Shape != Rect {
						t.Fatalf("(%d,%d) %v module shape %d, want Rect", op.Row, op.Col, op.Variant, op.Shape)
					}
				case Isolated, Corner:
					// Classy rounds only the top-left and bottom-right corners.
					if dot != Classy && (op.Shape == Rect || !op.Dark()) {
						t.Fatalf("(%d,%d) %v module shape %d, want rounded", op.Row, op.Col, op.Variant, op.Shape)
					}
				}
			}
		})
	}
}

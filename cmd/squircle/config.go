package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/superellipse"
)

// Config describes the image to produce. It can be loaded from TOML and YAML
// files.
type Config struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	// Distance between the image's edges and the shape's bounding rectangle.
	Padding float64 `toml:"padding" yaml:"padding"`
	// Radius and exponent shared by all corners. Corners overrides them per
	// corner.
	Radius   float64       `toml:"radius" yaml:"radius"`
	Exponent float64       `toml:"exponent" yaml:"exponent"`
	Corners  CornersConfig `toml:"corners" yaml:"corners"`
	// Inset applied to the finished shape, as for drawing a border's inner
	// edge.
	Inset float64 `toml:"inset" yaml:"inset"`
	// Colors as hex strings, such as "#3366ff" or "3366ff80". An empty
	// background is transparent.
	Fill       string `toml:"fill" yaml:"fill"`
	Background string `toml:"background" yaml:"background"`
	Backend    string `toml:"backend" yaml:"backend"`
	// Output format, "png" or "svg". If empty, it is derived from the output
	// file's extension.
	Format string `toml:"format" yaml:"format"`
	// Precision of SVG coordinates.
	Precision int `toml:"precision" yaml:"precision"`
}

type CornersConfig struct {
	TopLeft     CornerConfig `toml:"top_left" yaml:"top_left"`
	TopRight    CornerConfig `toml:"top_right" yaml:"top_right"`
	BottomLeft  CornerConfig `toml:"bottom_left" yaml:"bottom_left"`
	BottomRight CornerConfig `toml:"bottom_right" yaml:"bottom_right"`
}

// CornerConfig overrides the shared radius and exponent of a single corner.
type CornerConfig struct {
	// Radius holds one value for equal radii, or the horizontal and vertical
	// radii.
	Radius   []float64 `toml:"radius" yaml:"radius"`
	Exponent *float64  `toml:"exponent" yaml:"exponent"`
}

func defaultConfig() Config {
	return Config{
		Width:     256,
		Height:    256,
		Padding:   16,
		Radius:    64,
		Exponent:  4,
		Fill:      "#000000",
		Backend:   "gg",
		Precision: 3,
	}
}

// loadConfig decodes the file at path over cfg. The format is chosen by the
// file's extension.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("couldn't decode %s: %w", path, err)
	}
	return nil
}

func (cfg Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	switch cfg.Format {
	case "", "png", "svg":
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
	for _, c := range []CornerConfig{cfg.Corners.TopLeft, cfg.Corners.TopRight, cfg.Corners.BottomLeft, cfg.Corners.BottomRight} {
		if n := len(c.Radius); n > 2 {
			return fmt.Errorf("corner radius has %d values, want 1 or 2", n)
		}
	}
	return nil
}

// Shape builds the superellipse rectangle described by cfg.
func (cfg Config) Shape() superellipse.SuperellipseRect {
	rect := superellipse.Rect{
		Right:  float64(cfg.Width),
		Bottom: float64(cfg.Height),
	}.Inset(superellipse.SymmetricInsets(superellipse.Pt(cfg.Padding, cfg.Padding)))

	corners := superellipse.Corners[CornerConfig]{
		TopLeft:     cfg.Corners.TopLeft,
		TopRight:    cfg.Corners.TopRight,
		BottomLeft:  cfg.Corners.BottomLeft,
		BottomRight: cfg.Corners.BottomRight,
	}
	radii := superellipse.MapCorners(corners, func(c CornerConfig) superellipse.Point {
		switch len(c.Radius) {
		case 1:
			return superellipse.Pt(c.Radius[0], c.Radius[0])
		case 2:
			return superellipse.Pt(c.Radius[0], c.Radius[1])
		default:
			return superellipse.Pt(cfg.Radius, cfg.Radius)
		}
	})
	exponents := superellipse.MapCorners(corners, func(c CornerConfig) float64 {
		if c.Exponent != nil {
			return *c.Exponent
		}
		return cfg.Exponent
	})

	s := rect.RoundedRect(radii).WithExponents(exponents)
	if cfg.Inset != 0 {
		s = s.InsetSymmetric(superellipse.Pt(cfg.Inset, cfg.Inset))
	}
	return s
}

var errInvalidColor = errors.New("invalid color")

// parseColor parses a hex color. It returns nil for the empty string.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%w %q", errInvalidColor, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return nil, fmt.Errorf("%w %q", errInvalidColor, s)
	}
	return gg.Hex(hex).Color(), nil
}

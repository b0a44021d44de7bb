// Package config loads the drawing application settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"DrawShape/internal/shape"
)

const (
	MinSize = 10
	MaxSize = 100
)

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidSize  = errors.New("size out of range")
)

// Config holds window and tool defaults.
type Config struct {
	Title          string   `toml:"title"`
	Width          float32  `toml:"width"`
	Height         float32  `toml:"height"`
	DefaultKind    string   `toml:"default_kind"`
	DefaultColor   string   `toml:"default_color"`
	DefaultSize    float64  `toml:"default_size"`
	HighlightColor string   `toml:"highlight_color"`
	Swatches       []string `toml:"swatches"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Title:          "Complex Shape Draw",
		Width:          400,
		Height:         500,
		DefaultKind:    string(shape.KindCircle),
		DefaultColor:   "#ff0000",
		DefaultSize:    50,
		HighlightColor: "#00ffff",
		Swatches:       []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that could not be enforced by the decoder.
func (c Config) Validate() error {
	if _, err := shape.ParseKind(c.DefaultKind); err != nil {
		return fmt.Errorf("default_kind: %w", err)
	}
	if c.DefaultSize < MinSize || c.DefaultSize > MaxSize {
		return fmt.Errorf("default_size %v: %w", c.DefaultSize, ErrInvalidSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface %vx%v: %w", c.Width, c.Height, ErrInvalidSize)
	}
	for _, hex := range append([]string{c.DefaultColor, c.HighlightColor}, c.Swatches...) {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// Kind returns the default shape kind. Validate must have passed.
func (c Config) Kind() shape.Kind {
	k, _ := shape.ParseKind(c.DefaultKind)
	return k
}

// Color returns the default fill color, red if unparsable.
func (c Config) Color() color.Color {
	return mustColor(c.DefaultColor, color.NRGBA{R: 255, A: 255})
}

// Highlight returns the hover fill color, aqua if unparsable.
func (c Config) Highlight() color.Color {
	return mustColor(c.HighlightColor, color.NRGBA{G: 255, B: 255, A: 255})
}

// SwatchColors returns the parsed palette, skipping bad entries.
func (c Config) SwatchColors() []color.Color {
	out := make([]color.Color, 0, len(c.Swatches))
	for _, hex := range c.Swatches {
		if col, err := ParseColor(hex); err == nil {
			out = append(out, col)
		}
	}
	return out
}

// ParseColor parses a "#rrggbb" or "#rgb" string into an opaque color.
func ParseColor(hex string) (color.Color, error) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor renders c as "#rrggbb", ignoring alpha.
func FormatColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

func mustColor(hex string, fallback color.Color) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

/*
Package config holds the editor settings.

Settings start from built-in defaults and may be overridden from a TOML file:

	# glyphstroke.toml
	[points]
	min_radius = 1.0
	max_radius = 20.0
	default_radius = 5.0
	max_points = 6

	[render]
	steps = 20

	[view]
	min_zoom = 0.1
	max_zoom = 10.0
	zoom_step = 1.2

	[colors]
	point = [255, 0, 0, 128]

Keys missing from the file keep their default values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/npillmayer/glyphstroke/curve"
	"github.com/npillmayer/glyphstroke/render"
	"github.com/npillmayer/glyphstroke/store"
	"github.com/npillmayer/glyphstroke/view"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
)

// tracer writes to trace with key 'glyphstroke.config'
func tracer() tracing.Trace {
	return tracing.Select("glyphstroke.config")
}

// RGBA is a color as [r, g, b, a], not premultiplied.
type RGBA [4]uint8

// Color returns c as a color.Color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Points configures control points.
type Points struct {
	MinRadius     float64 `toml:"min_radius"`
	MaxRadius     float64 `toml:"max_radius"`
	DefaultRadius float64 `toml:"default_radius"`
	MaxPoints     int     `toml:"max_points"`
}

// Render configures curve sampling.
type Render struct {
	Steps int `toml:"steps"` // coarse Bézier samples per curve
}

// View configures zooming of both canvases.
type View struct {
	MinZoom  float64 `toml:"min_zoom"`
	MaxZoom  float64 `toml:"max_zoom"`
	ZoomStep float64 `toml:"zoom_step"` // factor for one zoom-in step; zoom-out uses 2-ZoomStep
}

// Colors configures the palette of the canvases.
type Colors struct {
	Point      RGBA `toml:"point"`      // control point discs
	Outline    RGBA `toml:"outline"`    // control point borders
	Curve      RGBA `toml:"curve"`      // ribbons on the main canvas
	Connect    RGBA `toml:"connect"`    // connection rubber band
	Canvas     RGBA `toml:"canvas"`     // main canvas background
	Preview    RGBA `toml:"preview"`    // ribbons on the preview
	Background RGBA `toml:"background"` // preview background
}

// Settings is the complete editor configuration.
type Settings struct {
	Points Points `toml:"points"`
	Render Render `toml:"render"`
	View   View   `toml:"view"`
	Colors Colors `toml:"colors"`
}

// Default returns the built-in settings.
func Default() Settings {
	l := store.DefaultLimits()
	return Settings{
		Points: Points{
			MinRadius:     l.MinRadius,
			MaxRadius:     l.MaxRadius,
			DefaultRadius: l.DefaultRadius,
			MaxPoints:     l.MaxPoints,
		},
		Render: Render{Steps: render.DefaultSteps},
		View: View{
			MinZoom:  view.DefaultMinZoom,
			MaxZoom:  view.DefaultMaxZoom,
			ZoomStep: 1.2,
		},
		Colors: Colors{
			Point:      RGBA{255, 0, 0, 128},
			Outline:    RGBA{0, 0, 0, 255},
			Curve:      RGBA{0, 0, 255, 128},
			Connect:    RGBA{255, 165, 0, 200},
			Canvas:     RGBA{128, 128, 128, 255},
			Preview:    RGBA{0, 0, 0, 255},
			Background: RGBA{255, 255, 255, 255},
		},
	}
}

// Limits returns the point limits for a curve store.
func (s Settings) Limits() store.Limits {
	return store.Limits{
		MinRadius:     s.Points.MinRadius,
		MaxRadius:     s.Points.MaxRadius,
		DefaultRadius: s.Points.DefaultRadius,
		MaxPoints:     s.Points.MaxPoints,
	}
}

// Viewport creates a viewport with the configured zoom bounds.
func (s Settings) Viewport() *view.Viewport {
	return view.New(s.View.MinZoom, s.View.MaxZoom)
}

// Load reads settings from a TOML file, on top of the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("cannot read settings: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return s, fmt.Errorf("settings file %s: %w", path, err)
	}
	tracer().Infof("loaded settings from %s", path)
	return s, nil
}

// Parse decodes TOML settings on top of the defaults and validates them.
// Unknown keys are an error.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Default(), err
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Validate checks settings for consistency.
func (s Settings) Validate() error {
	var errs []error
	p := s.Points
	if p.MinRadius <= 0 {
		errs = append(errs, errors.New("min_radius must be > 0"))
	}
	if p.MaxRadius < p.MinRadius {
		errs = append(errs, errors.New("max_radius must not be below min_radius"))
	}
	if p.DefaultRadius < p.MinRadius || p.DefaultRadius > p.MaxRadius {
		errs = append(errs, errors.New("default_radius must lie within [min_radius, max_radius]"))
	}
	if p.MaxPoints < curve.MinRenderable || p.MaxPoints > curve.MaxPoints {
		errs = append(errs, fmt.Errorf("max_points must lie within [%d, %d]", curve.MinRenderable, curve.MaxPoints))
	}
	if s.Render.Steps < 1 {
		errs = append(errs, errors.New("render steps must be >= 1"))
	}
	if s.View.MinZoom <= 0 || s.View.MaxZoom < s.View.MinZoom {
		errs = append(errs, errors.New("zoom bounds must satisfy 0 < min_zoom <= max_zoom"))
	}
	if s.View.ZoomStep <= 1 || s.View.ZoomStep >= 2 {
		errs = append(errs, errors.New("zoom_step must lie within (1, 2)"))
	}
	return errors.Join(errs...)
}

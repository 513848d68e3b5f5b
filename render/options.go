// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/viewshed/grid"
)

// ---------- Defaults ----------

const (
	DefaultWidth    = 8 * vg.Inch
	DefaultHeight   = 8 * vg.Inch
	DefaultLevels   = 256
	DefaultExponent = 1.0
)

// Overlay colours.
var (
	NoDataColor    = color.RGBA{R: 255, G: 255, A: 255}
	VisibleColor   = color.RGBA{R: 255, B: 255, A: 255}
	ViewpointColor = color.RGBA{G: 255, B: 255, A: 255}
)

const (
	panicSizeInvalid     = "render: WithSize: width and height must be positive"
	panicExponentInvalid = "render: WithExponent: e must be finite and positive"
	panicLevelsInvalid   = "render: WithLevels: n must be ≥ 2"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved heatmap configuration.
type Options struct {
	colorizer     Colorizer
	title         string
	width, height vg.Length
	levels        int
	exponent      float64

	vshed  *grid.Grid
	vr, vc int
}

// WithColorizer selects the base colour map.
func WithColorizer(c Colorizer) Option {
	return func(o *Options) { o.colorizer = c }
}

// WithTitle sets the plot title.
func WithTitle(s string) Option {
	return func(o *Options) { o.title = s }
}

// WithSize sets the canvas size. Panics on non-positive lengths.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}
	return func(o *Options) { o.width, o.height = width, height }
}

// WithExponent raises scaled values to e before colouring.
// Panics unless e is finite and positive.
func WithExponent(e float64) Option {
	if math.IsNaN(e) || math.IsInf(e, 0) || e <= 0 {
		panic(panicExponentInvalid)
	}
	return func(o *Options) { o.exponent = e }
}

// WithLevels sets the number of palette entries. Panics if n < 2.
func WithLevels(n int) Option {
	if n < 2 {
		panic(panicLevelsInvalid)
	}
	return func(o *Options) { o.levels = n }
}

// WithViewshed overlays the Visible cells of vshed and marks (row, col).
func WithViewshed(vshed *grid.Grid, row, col int) Option {
	return func(o *Options) { o.vshed, o.vr, o.vc = vshed, row, col }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		colorizer: Greyscale,
		width:     DefaultWidth,
		height:    DefaultHeight,
		levels:    DefaultLevels,
		exponent:  DefaultExponent,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}

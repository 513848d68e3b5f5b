// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"
)

// Colorizer maps [0,1] onto equally spaced colour stops.
type Colorizer struct {
	Name  string
	Stops []color.RGBA
}

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}

// Built-in colorizers.
var (
	Greyscale    = Colorizer{Name: "greyscale", Stops: []color.RGBA{rgb(0, 0, 0), rgb(1, 1, 1)}}
	BlueGreenRed = Colorizer{Name: "bgr", Stops: []color.RGBA{rgb(0, 0, 1), rgb(0, 1, 0), rgb(1, 0, 0)}}
	Topo         = Colorizer{Name: "topo", Stops: []color.RGBA{rgb(0, 0.4, 0), rgb(0.6, 0.8, 0.2), rgb(0.7, 0.6, 0.4), rgb(0.5, 0.2, 0)}}
	Flow         = Colorizer{Name: "flow", Stops: []color.RGBA{rgb(1, 1, 1), rgb(1, 1, 0.6), rgb(0, 0.6, 1), rgb(0, 0, 0.6)}}
)

// Colorizers lists the built-ins in display order.
func Colorizers() []Colorizer { return []Colorizer{Greyscale, BlueGreenRed, Topo, Flow} }

// ColorizerByName returns the built-in with the given name.
func ColorizerByName(name string) (Colorizer, bool) {
	for _, c := range Colorizers() {
		if c.Name == name {
			return c, true
		}
	}
	return Colorizer{}, false
}

// At returns the colour for v. Values outside [0,1] are clamped.
func (cz Colorizer) At(v float64) color.RGBA {
	switch len(cz.Stops) {
	case 0:
		return color.RGBA{A: 255}
	case 1:
		return cz.Stops[0]
	}
	buckets := len(cz.Stops) - 1
	v = math.Min(1, math.Max(0, v))
	idx := min(int(v*float64(buckets)), buckets-1)
	t := v*float64(buckets) - float64(idx)
	lo, hi := cz.Stops[idx], cz.Stops[idx+1]
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*(1-t) + float64(b)*t + 0.5) }
	return color.RGBA{R: mix(lo.R, hi.R), G: mix(lo.G, hi.G), B: mix(lo.B, hi.B), A: 255}
}

// palette samples a Colorizer at n levels with exponent e applied to the
// scaled value. It implements gonum's palette.Palette.
type palette struct {
	colors []color.Color
}

func newPalette(cz Colorizer, n int, e float64) palette {
	p := palette{colors: make([]color.Color, n)}
	for i := range p.colors {
		s := 0.0
		if n > 1 {
			s = float64(i) / float64(n-1)
		}
		p.colors[i] = cz.At(math.Pow(s, e))
	}
	return p
}

// Colors implements palette.Palette.
func (p palette) Colors() []color.Color { return p.colors }

// solid is a one-colour palette for mask layers.
func solid(c color.Color) palette { return palette{colors: []color.Color{c}} }

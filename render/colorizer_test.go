package render_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/viewshed/render"
	"github.com/stretchr/testify/assert"
)

func TestColorizer_At(t *testing.T) {
	cases := []struct {
		name string
		cz   render.Colorizer
		v    float64
		want color.RGBA
	}{
		{"GreyLow", render.Greyscale, 0, color.RGBA{0, 0, 0, 255}},
		{"GreyHigh", render.Greyscale, 1, color.RGBA{255, 255, 255, 255}},
		{"GreyMid", render.Greyscale, 0.5, color.RGBA{128, 128, 128, 255}},
		{"ClampBelow", render.Greyscale, -3, color.RGBA{0, 0, 0, 255}},
		{"ClampAbove", render.Greyscale, 7, color.RGBA{255, 255, 255, 255}},
		{"BGRGreen", render.BlueGreenRed, 0.5, color.RGBA{0, 255, 0, 255}},
		{"BGRQuarter", render.BlueGreenRed, 0.25, color.RGBA{0, 128, 128, 255}},
		{"BGRRed", render.BlueGreenRed, 1, color.RGBA{255, 0, 0, 255}},
		{"TopoFirst", render.Topo, 0, color.RGBA{0, 102, 0, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cz.At(tc.v))
		})
	}
}

func TestColorizerByName(t *testing.T) {
	for _, c := range render.Colorizers() {
		got, ok := render.ColorizerByName(c.Name)
		assert.True(t, ok)
		assert.Equal(t, c.Name, got.Name)
	}
	_, ok := render.ColorizerByName("rainbow")
	assert.False(t, ok)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, 10) })
	assert.Panics(t, func() { render.WithExponent(0) })
	assert.Panics(t, func() { render.WithLevels(1) })
}

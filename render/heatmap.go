// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/viewshed/grid"
	"github.com/katalvlaran/viewshed/sweep"
)

// ErrTooSmall is returned for grids with fewer than two rows or columns,
// which a heatmap cannot lay out.
var ErrTooSmall = errors.New("render: grid must be at least 2×2")

// absent marks cells a layer does not draw. It is below any layer's Min and
// heatmaps leave underflow cells unfilled.
var absent = math.Inf(-1)

// gridXYZ adapts a Grid to plotter.GridXYZ. Raster row 0 is drawn at the top.
type gridXYZ struct {
	g    *grid.Grid
	cell func(r, c int) float64
}

func (x gridXYZ) Dims() (c, r int)   { return x.g.Cols(), x.g.Rows() }
func (x gridXYZ) Z(c, r int) float64 { return x.cell(x.g.Rows()-1-r, c) }
func (x gridXYZ) X(c int) float64    { return float64(c) }
func (x gridXYZ) Y(r int) float64    { return float64(r) }

// values draws data cells at their value.
func values(g *grid.Grid) gridXYZ {
	return gridXYZ{g: g, cell: func(r, c int) float64 {
		if !g.Valid(r, c) {
			return absent
		}
		return g.Value(r, c)
	}}
}

// mask draws 1 where keep holds.
func mask(g *grid.Grid, keep func(r, c int) bool) gridXYZ {
	return gridXYZ{g: g, cell: func(r, c int) float64 {
		if keep(r, c) {
			return 1
		}
		return absent
	}}
}

// Plot builds the heatmap of g without saving it.
// Returns ErrTooSmall for grids under 2×2 and ErrDimensionMismatch when
// a viewshed overlay does not match g.
func Plot(g *grid.Grid, opts ...Option) (*plot.Plot, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	if g.Rows() < 2 || g.Cols() < 2 {
		return nil, ErrTooSmall
	}
	o := gatherOptions(opts...)
	if o.vshed != nil && !grid.SameShape(g, o.vshed) {
		return nil, grid.ErrDimensionMismatch
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row (from bottom)"

	if g.Min() <= g.Max() {
		base := plotter.NewHeatMap(values(g), newPalette(o.colorizer, o.levels, o.exponent))
		base.Min, base.Max = g.Min(), g.Max()
		if base.Min == base.Max {
			base.Max = base.Min + 1
		}
		p.Add(base)
	}

	p.Add(maskLayer(g, NoDataColor, func(r, c int) bool { return !g.Valid(r, c) }))

	if o.vshed != nil {
		v := o.vshed
		p.Add(maskLayer(g, VisibleColor, func(r, c int) bool {
			return v.Valid(r, c) && v.Value(r, c) == sweep.Visible
		}))
		vp, err := plotter.NewScatter(plotter.XYs{{X: float64(o.vc), Y: float64(g.Rows() - 1 - o.vr)}})
		if err != nil {
			return nil, fmt.Errorf("render: viewpoint marker: %w", err)
		}
		vp.GlyphStyle.Color = ViewpointColor
		vp.GlyphStyle.Shape = draw.CircleGlyph{}
		vp.GlyphStyle.Radius = vg.Points(4)
		p.Add(vp)
	}
	return p, nil
}

func maskLayer(g *grid.Grid, col color.Color, keep func(r, c int) bool) *plotter.HeatMap {
	h := plotter.NewHeatMap(mask(g, keep), solid(col))
	h.Min, h.Max = 0, 1
	return h
}

// Heatmap renders g and saves it to path.
func Heatmap(g *grid.Grid, path string, opts ...Option) error {
	p, err := Plot(g, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

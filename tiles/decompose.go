// SPDX-License-Identifier: MIT

package tiles

import (
	"math"

	"github.com/katalvlaran/viewshed/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RootSquares returns the root tiling of g in claim order.
// Complexity: O(r×c).
func RootSquares(g *grid.Grid) ([]Square, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	rows, cols := g.Rows(), g.Cols()
	size := 1
	for size*2 <= min(rows, cols)/2 {
		size *= 2
	}

	claimed := make([]bool, rows*cols)
	var roots []Square
	for ; size >= 1; size /= 2 {
		for r := 0; r+size <= rows; r += size {
			for c := 0; c+size <= cols; c += size {
				if claimed[r*cols+c] {
					continue
				}
				for j := 0; j < size; j++ {
					for k := 0; k < size; k++ {
						claimed[(r+j)*cols+c+k] = true
					}
				}
				roots = append(roots, Square{R: r, C: c, Size: size})
			}
		}
	}
	return roots, nil
}

// Decompose partitions g into tight squares with tolerance epsilon.
// Stage 1 (Validate): nil grid, epsilon ≥ 0 and not NaN.
// Stage 2 (Roots): RootSquares.
// Stage 3 (Refine): split each root until tight, then index the result.
// Complexity: O(r×c×log S) time, O(r×c) memory.
func Decompose(g *grid.Grid, epsilon float64) (*Set, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	if math.IsNaN(epsilon) || epsilon < 0 {
		return nil, ErrInvalidEpsilon
	}
	roots, err := RootSquares(g)
	if err != nil {
		return nil, err
	}

	d := decomposer{g: g, eps: epsilon}
	for _, root := range roots {
		d.refine(root)
	}
	return newSet(g.Rows(), g.Cols(), d.out)
}

// decomposer carries the refinement state. buf is reused across squares.
type decomposer struct {
	g   *grid.Grid
	eps float64
	buf []float64
	out []Square
}

// refine appends s if it is tight, otherwise refines its quadrants.
func (d *decomposer) refine(s Square) {
	if d.tight(&s) {
		d.out = append(d.out, s)
		return
	}
	for _, q := range s.quadrants() {
		d.refine(q)
	}
}

// tight reports whether s is tight and, if so, fills in Elev and NoData.
func (d *decomposer) tight(s *Square) bool {
	first := d.g.Valid(s.R, s.C)
	d.buf = d.buf[:0]
	for j := 0; j < s.Size; j++ {
		for k := 0; k < s.Size; k++ {
			r, c := s.R+j, s.C+k
			if d.g.Valid(r, c) != first {
				return false
			}
			if first {
				d.buf = append(d.buf, d.g.Value(r, c))
			}
		}
	}
	if !first {
		s.NoData = true
		s.Elev = d.g.NoDataValue()
		return true
	}
	if s.Size > 1 && floats.Max(d.buf)-floats.Min(d.buf) > d.eps {
		return false
	}
	s.Elev = stat.Mean(d.buf, nil)
	return true
}

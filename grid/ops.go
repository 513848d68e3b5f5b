// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Diff returns a−b cell by cell. Cells that are nodata in both grids stay
// nodata in the result.
// Returns ErrDimensionMismatch if shapes differ and a wrapped
// ErrNoDataMismatch at the first cell that is nodata in exactly one input.
// Complexity: O(r×c).
func Diff(a, b *Grid) (*Grid, error) {
	if a == nil || b == nil {
		return nil, ErrNilGrid
	}
	if !SameShape(a, b) {
		return nil, ErrDimensionMismatch
	}
	out, err := NewFrom(a)
	if err != nil {
		return nil, err
	}
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			av, bv := a.Valid(r, c), b.Valid(r, c)
			switch {
			case av != bv:
				return nil, fmt.Errorf("grid: diff at (%d,%d): %w", r, c, ErrNoDataMismatch)
			case !av:
				out.StoreNoData(r, c)
			default:
				out.Store(r, c, a.Value(r, c)-b.Value(r, c))
			}
		}
	}
	return out, nil
}

// Downsample keeps every stride-th row and column so that neither side of
// the result exceeds maxSide. The stride is int(max(rows,cols)/maxSide)+1 and
// the result has ⌈rows/stride⌉×⌈cols/stride⌉ cells.
// If both sides already fit, a clone of g is returned.
// Returns ErrInvalidDimensions for maxSide ≤ 0.
// Complexity: O(r×c / stride²).
func Downsample(g *Grid, maxSide int) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if maxSide <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := Stride(g.Rows(), g.Cols(), maxSide)
	if stride == 1 {
		return g.Clone(), nil
	}
	rows, cols := ceilDiv(g.Rows(), stride), ceilDiv(g.Cols(), stride)
	out, err := NewFromSized(g, rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < g.Rows(); r += stride {
		for c := 0; c < g.Cols(); c += stride {
			if g.Valid(r, c) {
				out.Store(r/stride, c/stride, g.Value(r, c))
			}
		}
	}
	return out, nil
}

// Stride returns the sampling step that brings a rows×cols raster under
// maxSide on both axes, or 1 when no sampling is needed.
func Stride(rows, cols, maxSide int) int {
	rowRatio := float64(rows) / float64(maxSide)
	colRatio := float64(cols) / float64(maxSide)
	if rowRatio <= 1 && colRatio <= 1 {
		return 1
	}
	return int(max(rowRatio, colRatio)) + 1
}

// ceilDiv returns ⌈a/b⌉ for positive a and b.
func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Summary reports basic facts about a grid.
type Summary struct {
	NCols, NRows int
	NoData       float64
	DataCells    int
	Min, Max     float64
	Mean, StdDev float64
}

// Stats summarizes g. Mean and StdDev are computed over data cells only and
// are zero when the grid holds no data.
// Complexity: O(r×c).
func Stats(g *Grid) Summary {
	s := Summary{
		NCols:  g.Cols(),
		NRows:  g.Rows(),
		NoData: g.NoDataValue(),
		Min:    g.Min(),
		Max:    g.Max(),
	}
	vals := make([]float64, 0, g.Len())
	for i, ok := range g.valid {
		if ok {
			vals = append(vals, g.data[i])
		}
	}
	s.DataCells = len(vals)
	switch len(vals) {
	case 0:
	case 1:
		s.Mean = vals[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	}
	return s
}

// CountEqual returns the number of data cells whose value equals v.
func CountEqual(g *Grid, v float64) int {
	n := 0
	for i, ok := range g.valid {
		if ok && g.data[i] == v {
			n++
		}
	}
	return n
}

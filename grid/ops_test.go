package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/viewshed/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nd = -9999

// rowsOf flattens a grid back into [][]float64 with nodata as the sentinel.
func rowsOf(g *grid.Grid) [][]float64 {
	out := make([][]float64, g.Rows())
	for r := range out {
		out[r] = make([]float64, g.Cols())
		for c := range out[r] {
			out[r][c], _ = g.At(r, c)
		}
	}
	return out
}

func TestDiff(t *testing.T) {
	a, err := grid.FromRows([][]float64{{5, 3}, {nd, 1}}, nd)
	require.NoError(t, err)
	b, err := grid.FromRows([][]float64{{2, 3}, {nd, 4}}, nd)
	require.NoError(t, err)

	d, err := grid.Diff(a, b)
	require.NoError(t, err)
	want := [][]float64{{3, 0}, {nd, -3}}
	if diff := cmp.Diff(want, rowsOf(d)); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_Errors(t *testing.T) {
	a, _ := grid.FromRows([][]float64{{1, 2}}, nd)
	b, _ := grid.FromRows([][]float64{{1}, {2}}, nd)
	_, err := grid.Diff(a, b)
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)

	c, _ := grid.FromRows([][]float64{{1, nd}}, nd)
	_, err = grid.Diff(a, c)
	require.ErrorIs(t, err, grid.ErrNoDataMismatch)

	_, err = grid.Diff(nil, a)
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

func TestDownsample(t *testing.T) {
	src := make([][]float64, 5)
	for r := range src {
		src[r] = make([]float64, 5)
		for c := range src[r] {
			src[r][c] = float64(r*10 + c)
		}
	}
	src[2][2] = nd
	g, err := grid.FromRows(src, nd)
	require.NoError(t, err)

	// 5/2 = 2.5 → stride 3 → rows/cols {0,3}.
	out, err := grid.Downsample(g, 2)
	require.NoError(t, err)
	want := [][]float64{{0, 3}, {30, 33}}
	if diff := cmp.Diff(want, rowsOf(out)); diff != "" {
		t.Errorf("Downsample mismatch (-want +got):\n%s", diff)
	}

	same, err := grid.Downsample(g, 5)
	require.NoError(t, err)
	assert.Equal(t, rowsOf(g), rowsOf(same))

	_, err = grid.Downsample(g, 0)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestStride(t *testing.T) {
	assert.Equal(t, 1, grid.Stride(10, 10, 10))
	assert.Equal(t, 2, grid.Stride(11, 4, 10))
	assert.Equal(t, 4, grid.Stride(3, 35, 10))
}

func TestStats(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 3}, {nd, 5}}, nd)
	require.NoError(t, err)
	s := grid.Stats(g)
	assert.Equal(t, 2, s.NCols)
	assert.Equal(t, 2, s.NRows)
	assert.Equal(t, 3, s.DataCells)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)
	assert.Equal(t, float64(nd), s.NoData)
}

func TestCountEqual(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 0, 1}, {nd, 1, 0}}, nd)
	require.NoError(t, err)
	assert.Equal(t, 3, grid.CountEqual(g, 1))
	assert.Equal(t, 2, grid.CountEqual(g, 0))
}

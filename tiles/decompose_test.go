package tiles_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/viewshed/grid"
	"github.com/katalvlaran/viewshed/terrain"
	"github.com/katalvlaran/viewshed/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nd = -9999

// assertPartition checks total, non-overlapping coverage with power-of-two
// sides no larger than the grid.
func assertPartition(t *testing.T, g *grid.Grid, squares []tiles.Square) {
	t.Helper()
	owner := make([]int, g.Len())
	for i := range owner {
		owner[i] = -1
	}
	for i, s := range squares {
		require.Positive(t, s.Size)
		require.Zero(t, s.Size&(s.Size-1), "size %d is not a power of two", s.Size)
		require.LessOrEqual(t, s.Size, max(g.Rows(), g.Cols()))
		for r := s.R; r < s.R+s.Size; r++ {
			for c := s.C; c < s.C+s.Size; c++ {
				require.True(t, g.InBounds(r, c), "square %d leaves the grid at (%d,%d)", i, r, c)
				idx := g.Index(r, c)
				require.Equal(t, -1, owner[idx], "cell (%d,%d) covered twice", r, c)
				owner[idx] = i
			}
		}
	}
	for i, o := range owner {
		r, c := g.Coordinate(i)
		require.NotEqual(t, -1, o, "cell (%d,%d) uncovered", r, c)
	}
}

//----------------------------------------------------------------------------//
// RootSquares
//----------------------------------------------------------------------------//

func TestRootSquares_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		firstSize  int
	}{
		{"Single", 1, 1, 1},
		{"Square4", 4, 4, 2},
		{"Square8", 8, 8, 4},
		{"Odd5x7", 5, 7, 2},
		{"Wide3x20", 3, 20, 1},
		{"Tall17x9", 17, 9, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := terrain.Flat(tc.rows, tc.cols, 0)
			require.NoError(t, err)
			roots, err := tiles.RootSquares(g)
			require.NoError(t, err)
			require.NotEmpty(t, roots)
			assert.Equal(t, tc.firstSize, roots[0].Size)
			assertPartition(t, g, roots)
		})
	}
}

// TestRootSquares_Order checks claim order: a 3×5 grid is all single cells in
// row-major order, and a 5×5 grid takes four 2×2 blocks before the singles of
// its ragged right column and bottom row.
func TestRootSquares_Order(t *testing.T) {
	g, err := terrain.Flat(3, 5, 0)
	require.NoError(t, err)
	roots, err := tiles.RootSquares(g)
	require.NoError(t, err)
	want := []tiles.Square{
		{R: 0, C: 0, Size: 1}, {R: 0, C: 1, Size: 1}, {R: 0, C: 2, Size: 1}, {R: 0, C: 3, Size: 1}, {R: 0, C: 4, Size: 1},
		{R: 1, C: 0, Size: 1}, {R: 1, C: 1, Size: 1}, {R: 1, C: 2, Size: 1}, {R: 1, C: 3, Size: 1}, {R: 1, C: 4, Size: 1},
		{R: 2, C: 0, Size: 1}, {R: 2, C: 1, Size: 1}, {R: 2, C: 2, Size: 1}, {R: 2, C: 3, Size: 1}, {R: 2, C: 4, Size: 1},
	}
	if diff := cmp.Diff(want, roots); diff != "" {
		t.Errorf("RootSquares mismatch (-want +got):\n%s", diff)
	}

	g, err = terrain.Flat(5, 5, 0)
	require.NoError(t, err)
	roots, err = tiles.RootSquares(g)
	require.NoError(t, err)
	require.Len(t, roots, 4+9)
	for _, s := range roots[:4] {
		assert.Equal(t, 2, s.Size)
	}
	for _, s := range roots[4:] {
		assert.Equal(t, 1, s.Size)
		assert.True(t, s.R == 4 || s.C == 4, "single at (%d,%d)", s.R, s.C)
	}
}

//----------------------------------------------------------------------------//
// Decompose
//----------------------------------------------------------------------------//

func TestDecompose_Errors(t *testing.T) {
	g, err := terrain.Flat(2, 2, 0)
	require.NoError(t, err)
	_, err = tiles.Decompose(g, -1)
	require.ErrorIs(t, err, tiles.ErrInvalidEpsilon)
	_, err = tiles.Decompose(g, math.NaN())
	require.ErrorIs(t, err, tiles.ErrInvalidEpsilon)
	_, err = tiles.Decompose(nil, 0)
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestDecompose_FlatKeepsRoots checks that a flat grid is already tight.
func TestDecompose_FlatKeepsRoots(t *testing.T) {
	g, err := terrain.Flat(8, 8, 3)
	require.NoError(t, err)
	set, err := tiles.Decompose(g, 0)
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())
	for _, s := range set.Squares() {
		assert.Equal(t, 4, s.Size)
		assert.Equal(t, 3.0, s.Elev)
		assert.False(t, s.NoData)
	}
}

// TestDecompose_SplitsMixedSquare builds a 4×4 grid whose upper-left 2×2 is
// nodata, one 2×2 has a spread above epsilon and the rest is near-flat.
func TestDecompose_SplitsMixedSquare(t *testing.T) {
	g, err := grid.FromRows([][]float64{
		{nd, nd, 1, 1.5},
		{nd, nd, 1, 1},
		{5, 9, 2, 2},
		{5, 5, 2, 2.25},
	}, nd)
	require.NoError(t, err)
	set, err := tiles.Decompose(g, 0.5)
	require.NoError(t, err)

	want := []tiles.Square{
		{R: 0, C: 0, Size: 2, Elev: nd, NoData: true},
		{R: 0, C: 2, Size: 2, Elev: 1.125},
		{R: 2, C: 0, Size: 1, Elev: 5},
		{R: 2, C: 1, Size: 1, Elev: 9},
		{R: 3, C: 0, Size: 1, Elev: 5},
		{R: 3, C: 1, Size: 1, Elev: 5},
		{R: 2, C: 2, Size: 2, Elev: 2.0625},
	}
	if diff := cmp.Diff(want, set.Squares()); diff != "" {
		t.Errorf("Decompose mismatch (-want +got):\n%s", diff)
	}
}

// TestDecompose_Partition runs the partition check over several terrains and
// tolerances, holes included.
func TestDecompose_Partition(t *testing.T) {
	opts := terrain.DefaultHillsOptions()
	opts.Holes = 0.15
	for _, dims := range [][2]int{{1, 1}, {7, 5}, {16, 16}, {13, 31}} {
		g, err := terrain.Hills(dims[0], dims[1], opts, 11)
		require.NoError(t, err)
		for _, eps := range []float64{0, 2, 20, math.Inf(1)} {
			set, err := tiles.Decompose(g, eps)
			require.NoError(t, err)
			assertPartition(t, g, set.Squares())
			for _, s := range set.Squares() {
				if s.NoData {
					continue
				}
				assert.False(t, math.IsNaN(s.Elev))
			}
		}
	}
}

// TestDecompose_ZeroEpsilonOnDistinctValues yields one square per cell.
func TestDecompose_ZeroEpsilonOnDistinctValues(t *testing.T) {
	g, err := terrain.Random(9, 9, 1000, 3)
	require.NoError(t, err)
	set, err := tiles.Decompose(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 81, set.Len())
}

// TestDecompose_SentinelValuedDataIsData keeps cells that equal the nodata
// sentinel inside data squares.
func TestDecompose_SentinelValuedDataIsData(t *testing.T) {
	g, err := grid.New(grid.Header{NRows: 4, NCols: 4, NoData: 0})
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.NoError(t, g.Set(r, c, 0))
		}
	}
	set, err := tiles.Decompose(g, 0)
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())
	for i, sq := range set.Squares() {
		assert.Equal(t, 2, sq.Size, "square %d", i)
		assert.False(t, sq.NoData, "square %d", i)
		assert.Equal(t, 0.0, sq.Elev, "square %d", i)
	}
}

//----------------------------------------------------------------------------//
// Set.Locate
//----------------------------------------------------------------------------//

// TestSet_Locate matches the R-tree lookup against Square.Contains.
func TestSet_Locate(t *testing.T) {
	g, err := terrain.Hills(21, 14, terrain.DefaultHillsOptions(), 4)
	require.NoError(t, err)
	set, err := tiles.Decompose(g, 10)
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			i, ok := set.Locate(r, c)
			require.True(t, ok, "(%d,%d)", r, c)
			require.True(t, set.Square(i).Contains(r, c), "(%d,%d) → square %d %+v", r, c, i, set.Square(i))
		}
	}
	_, ok := set.Locate(-1, 0)
	assert.False(t, ok)
	_, ok = set.Locate(0, 14)
	assert.False(t, ok)
}

func TestSquare_Center(t *testing.T) {
	s := tiles.Square{R: 4, C: 8, Size: 4}
	assert.Equal(t, 5.5, s.CenterRow())
	assert.Equal(t, 9.5, s.CenterCol())
	assert.Equal(t, 16, s.Cells())
	one := tiles.Square{R: 2, C: 3, Size: 1}
	assert.Equal(t, 2.0, one.CenterRow())
	assert.Equal(t, 3.0, one.CenterCol())
}

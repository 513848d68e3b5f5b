// SPDX-License-Identifier: MIT

package viewcount

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/viewshed/grid"
	"github.com/katalvlaran/viewshed/sweep"
	"github.com/katalvlaran/viewshed/tiles"
	"gonum.org/v1/gonum/stat"
)

// Exact returns the exact view count of every data cell of elev.
// Stage 1 (Collect): row-major list of data cells.
// Stage 2 (Sweep): one VisibleCount per cell on the pool.
// Stage 3 (Assemble): copy counts into a grid with elev's header.
func Exact(ctx context.Context, elev *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if elev == nil {
		return nil, grid.ErrNilGrid
	}
	o := gatherOptions(opts...)

	cells := make([]int, 0, elev.Len())
	for i := 0; i < elev.Len(); i++ {
		if r, c := elev.Coordinate(i); elev.Valid(r, c) {
			cells = append(cells, i)
		}
	}
	counts, err := o.runPool(ctx, len(cells), func(i int) (int, error) {
		r, c := elev.Coordinate(cells[i])
		return sweep.VisibleCount(elev, r, c)
	})
	if err != nil {
		return nil, err
	}

	out, err := grid.NewFrom(elev)
	if err != nil {
		return nil, err
	}
	for i, idx := range cells {
		r, c := out.Coordinate(idx)
		out.Store(r, c, float64(counts[i]))
	}
	return out, nil
}

// Approx decomposes elev with tolerance epsilon, runs one approximate sweep
// per data square and assigns its count to every cell of the square.
// Nodata squares stay nodata without a sweep.
// Returns tiles.ErrInvalidEpsilon for a bad epsilon.
func Approx(ctx context.Context, elev *grid.Grid, epsilon float64, opts ...Option) (*grid.Grid, error) {
	set, err := tiles.Decompose(elev, epsilon)
	if err != nil {
		return nil, err
	}
	return ApproxWithSet(ctx, elev, set, opts...)
}

// ApproxWithSet is Approx over an existing decomposition of elev.
func ApproxWithSet(ctx context.Context, elev *grid.Grid, set *tiles.Set, opts ...Option) (*grid.Grid, error) {
	if elev == nil {
		return nil, grid.ErrNilGrid
	}
	if set == nil || set.Rows() != elev.Rows() || set.Cols() != elev.Cols() {
		return nil, grid.ErrDimensionMismatch
	}
	o := gatherOptions(opts...)

	squares := make([]int, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		if !set.Square(i).NoData {
			squares = append(squares, i)
		}
	}
	counts, err := o.runPool(ctx, len(squares), func(i int) (int, error) {
		return sweep.ApproxVisibleCount(set, squares[i])
	})
	if err != nil {
		return nil, err
	}

	out, err := grid.NewFrom(elev)
	if err != nil {
		return nil, err
	}
	for i, sq := range squares {
		s := set.Square(sq)
		for r := s.R; r < s.R+s.Size; r++ {
			for c := s.C; c < s.C+s.Size; c++ {
				out.Store(r, c, float64(counts[i]))
			}
		}
	}
	return out, nil
}

// Coarsen returns the ⌈rows/k⌉×⌈cols/k⌉ grid of k×k block means of elev.
// A block is nodata only if all of its cells are; otherwise it holds the
// mean of its data cells. Ragged edge blocks use the cells that exist.
// Returns ErrInvalidBlockSize for k < 1.
func Coarsen(elev *grid.Grid, k int) (*grid.Grid, error) {
	if elev == nil {
		return nil, grid.ErrNilGrid
	}
	if k < 1 {
		return nil, fmt.Errorf("viewcount: Coarsen(k=%d): %w", k, ErrInvalidBlockSize)
	}
	rows, cols := ceilDiv(elev.Rows(), k), ceilDiv(elev.Cols(), k)
	coarse, err := grid.NewFromSized(elev, rows, cols)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, 0, k*k)
	for m := 0; m < rows; m++ {
		for n := 0; n < cols; n++ {
			buf = buf[:0]
			for r := m * k; r < min((m+1)*k, elev.Rows()); r++ {
				for c := n * k; c < min((n+1)*k, elev.Cols()); c++ {
					if elev.Valid(r, c) {
						buf = append(buf, elev.Value(r, c))
					}
				}
			}
			if len(buf) > 0 {
				coarse.Store(m, n, stat.Mean(buf, nil))
			}
		}
	}
	return coarse, nil
}

// Simplified approximates view counts by running Exact on Coarsen(elev, k)
// and broadcasting each coarse count to the data cells of its block.
// Counts are in coarse-cell units unless WithAreaScaling is given.
// Nodata cells of elev stay nodata.
func Simplified(ctx context.Context, elev *grid.Grid, k int, opts ...Option) (*grid.Grid, error) {
	coarse, err := Coarsen(elev, k)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	coarseCounts, err := Exact(ctx, coarse, opts...)
	if err != nil {
		return nil, err
	}

	scale := 1.0
	if o.areaScaling {
		scale = float64(k * k)
	}
	out, err := grid.NewFrom(elev)
	if err != nil {
		return nil, err
	}
	for r := 0; r < elev.Rows(); r++ {
		for c := 0; c < elev.Cols(); c++ {
			if elev.Valid(r, c) {
				out.Store(r, c, coarseCounts.Value(r/k, c/k)*scale)
			}
		}
	}
	return out, nil
}

// NearestNeighbor smooths a count grid over k×k neighborhoods: the data
// cell nearest the neighborhood's geometric center supplies the value for
// every data cell of the neighborhood. On equal distances the first cell in
// row-major order wins. Nodata cells stay nodata.
// Returns ErrInvalidBlockSize for k < 1.
// Complexity: O(r×c).
func NearestNeighbor(counts *grid.Grid, k int) (*grid.Grid, error) {
	if counts == nil {
		return nil, grid.ErrNilGrid
	}
	if k < 1 {
		return nil, fmt.Errorf("viewcount: NearestNeighbor(k=%d): %w", k, ErrInvalidBlockSize)
	}
	out, err := grid.NewFrom(counts)
	if err != nil {
		return nil, err
	}
	for m := 0; m < counts.Rows(); m += k {
		for n := 0; n < counts.Cols(); n += k {
			rEnd, cEnd := min(m+k, counts.Rows()), min(n+k, counts.Cols())
			cr := float64(m) + float64(k-1)/2
			cc := float64(n) + float64(k-1)/2

			best, bestDist := 0.0, math.Inf(1)
			for r := m; r < rEnd; r++ {
				for c := n; c < cEnd; c++ {
					if !counts.Valid(r, c) {
						continue
					}
					if d := math.Hypot(float64(r)-cr, float64(c)-cc); d < bestDist {
						best, bestDist = counts.Value(r, c), d
					}
				}
			}
			for r := m; r < rEnd; r++ {
				for c := n; c < cEnd; c++ {
					if counts.Valid(r, c) {
						out.Store(r, c, best)
					}
				}
			}
		}
	}
	return out, nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/viewshed/grid"
	"github.com/katalvlaran/viewshed/tiles"
)

// ApproxViewshed approximates the viewshed from square vp of set, a
// decomposition of elev. Every cell of the viewpoint square is Visible and
// each other data square's verdict is broadcast to all cells it covers.
// Returns ErrDimensionMismatch if set does not partition a grid of elev's
// shape, and a wrapped ErrInvalidViewpoint for a bad or nodata square.
// Complexity: O(m log m + n), m = squares.
func ApproxViewshed(elev *grid.Grid, set *tiles.Set, vp int) (*grid.Grid, error) {
	if err := checkSet(elev, set); err != nil {
		return nil, err
	}
	s, err := SquareStream(set, vp)
	if err != nil {
		return nil, err
	}
	out, err := grid.NewFrom(elev)
	if err != nil {
		return nil, err
	}
	fill(out, set.Square(vp), Visible)
	err = s.Run(func(target int, visible bool) {
		fill(out, set.Square(target), verdictValue(visible))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproxViewshedAt is ApproxViewshed with the viewpoint square found by the
// cell (row, col) it covers.
func ApproxViewshedAt(elev *grid.Grid, set *tiles.Set, row, col int) (*grid.Grid, error) {
	if err := checkSet(elev, set); err != nil {
		return nil, err
	}
	vp, ok := set.Locate(row, col)
	if !ok {
		return nil, fmt.Errorf("sweep: viewpoint (%d,%d): %w", row, col, ErrInvalidViewpoint)
	}
	return ApproxViewshed(elev, set, vp)
}

// ApproxVisibleCount returns the number of cells an approximate sweep from
// square vp marks Visible, the viewpoint square's own cells included.
func ApproxVisibleCount(set *tiles.Set, vp int) (int, error) {
	s, err := SquareStream(set, vp)
	if err != nil {
		return 0, err
	}
	n := set.Square(vp).Cells()
	err = s.Run(func(target int, visible bool) {
		if visible {
			n += set.Square(target).Cells()
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func checkSet(elev *grid.Grid, set *tiles.Set) error {
	if elev == nil {
		return grid.ErrNilGrid
	}
	if set == nil {
		return ErrInvalidViewpoint
	}
	if set.Rows() != elev.Rows() || set.Cols() != elev.Cols() {
		return grid.ErrDimensionMismatch
	}
	return nil
}

// fill writes v into every cell of sq.
func fill(g *grid.Grid, sq tiles.Square, v float64) {
	for r := sq.R; r < sq.R+sq.Size; r++ {
		for c := sq.C; c < sq.C+sq.Size; c++ {
			g.Store(r, c, v)
		}
	}
}

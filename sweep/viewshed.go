// SPDX-License-Identifier: MIT

package sweep

import "github.com/katalvlaran/viewshed/grid"

// Cell values of a viewshed grid. Nodata cells keep the source sentinel.
const (
	Occluded = 0
	Visible  = 1
)

// Viewshed returns which cells of elev are visible from (row, col).
// The result has elev's header; data cells hold Visible or Occluded and
// nodata cells stay nodata. The viewpoint is always Visible.
// Returns a wrapped ErrInvalidViewpoint before any work if the viewpoint is
// out of bounds or nodata.
// Complexity: O(n log n) time, O(n) memory.
func Viewshed(elev *grid.Grid, row, col int) (*grid.Grid, error) {
	s, err := CellStream(elev, row, col)
	if err != nil {
		return nil, err
	}
	out, err := grid.NewFrom(elev)
	if err != nil {
		return nil, err
	}
	out.Store(row, col, Visible)
	err = s.Run(func(target int, visible bool) {
		r, c := out.Coordinate(target)
		out.Store(r, c, verdictValue(visible))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VisibleCount returns the number of cells visible from (row, col),
// viewpoint included, without materializing the viewshed grid.
func VisibleCount(elev *grid.Grid, row, col int) (int, error) {
	s, err := CellStream(elev, row, col)
	if err != nil {
		return 0, err
	}
	n := 1
	err = s.Run(func(_ int, visible bool) {
		if visible {
			n++
		}
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Count returns the number of Visible cells in a viewshed grid.
func Count(vshed *grid.Grid) int { return grid.CountEqual(vshed, Visible) }

func verdictValue(visible bool) float64 {
	if visible {
		return Visible
	}
	return Occluded
}

// SPDX-License-Identifier: MIT

package tiles

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// R-tree branching bounds.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// probeTolerance is the half-width of the box used to probe a cell center.
// It must stay below 0.5 so the probe never reaches a neighbouring cell.
const probeTolerance = 0.25

// Set is the immutable result of Decompose: the squares in decomposition
// order plus a spatial index over them.
type Set struct {
	rows, cols int
	squares    []Square
	tree       *rtreego.Rtree
}

func newSet(rows, cols int, squares []Square) (*Set, error) {
	objs := make([]rtreego.Spatial, len(squares))
	for i, s := range squares {
		rect, err := s.bounds()
		if err != nil {
			return nil, fmt.Errorf("tiles: index square %d: %w", i, err)
		}
		objs[i] = &indexed{idx: i, rect: rect}
	}
	return &Set{
		rows:    rows,
		cols:    cols,
		squares: squares,
		tree:    rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, objs...),
	}, nil
}

// Len returns the number of squares.
func (s *Set) Len() int { return len(s.squares) }

// Rows returns the row count of the grid the set partitions.
func (s *Set) Rows() int { return s.rows }

// Cols returns the column count of the grid the set partitions.
func (s *Set) Cols() int { return s.cols }

// Square returns the i-th square. It panics if i is out of range.
func (s *Set) Square(i int) Square { return s.squares[i] }

// Squares returns a copy of all squares in decomposition order.
func (s *Set) Squares() []Square {
	out := make([]Square, len(s.squares))
	copy(out, s.squares)
	return out
}

// Locate returns the index of the square covering cell (r, c), or false if
// the cell lies outside the grid.
// Complexity: O(log m) expected, m = Len().
func (s *Set) Locate(r, c int) (int, bool) {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return -1, false
	}
	probe := rtreego.Point{float64(r) + 0.5, float64(c) + 0.5}.ToRect(probeTolerance)
	hits := s.tree.SearchIntersect(probe)
	if len(hits) != 1 {
		return -1, false
	}
	return hits[0].(*indexed).idx, true
}

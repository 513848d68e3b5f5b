// SPDX-License-Identifier: MIT

package tiles

import "github.com/dhconnelly/rtreego"

// Square is one tile: Size×Size cells with its upper-left cell at (R, C).
// Elev is the representative elevation; it is meaningless when NoData is set.
type Square struct {
	R, C   int
	Size   int
	Elev   float64
	NoData bool
}

// CenterRow returns the row coordinate of the square's geometric center.
// It is a whole number only for size 1.
func (s Square) CenterRow() float64 { return float64(s.R) + float64(s.Size-1)/2 }

// CenterCol returns the column coordinate of the square's geometric center.
func (s Square) CenterCol() float64 { return float64(s.C) + float64(s.Size-1)/2 }

// Contains reports whether cell (r, c) lies inside the square.
func (s Square) Contains(r, c int) bool {
	return r >= s.R && r < s.R+s.Size && c >= s.C && c < s.C+s.Size
}

// Cells returns the number of cells the square covers.
func (s Square) Cells() int { return s.Size * s.Size }

// quadrants splits s into its four equal children in row-major order.
func (s Square) quadrants() [4]Square {
	h := s.Size / 2
	return [4]Square{
		{R: s.R, C: s.C, Size: h},
		{R: s.R, C: s.C + h, Size: h},
		{R: s.R + h, C: s.C, Size: h},
		{R: s.R + h, C: s.C + h, Size: h},
	}
}

// indexed wraps a square with its position in Set for the R-tree.
type indexed struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexed) Bounds() rtreego.Rect { return e.rect }

// bounds returns the square's extent in cell-edge coordinates.
func (s Square) bounds() (rtreego.Rect, error) {
	return rtreego.NewRect(rtreego.Point{float64(s.R), float64(s.C)}, []float64{float64(s.Size), float64(s.Size)})
}

// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// DefaultNoData is the NODATA sentinel used when a Header does not set one.
const DefaultNoData = -9999

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSetNoData = "SetNoData"
)

// gridErrorf wraps a sentinel with the method name and cell coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Header describes the shape and georeferencing of a raster.
// XLLCorner, YLLCorner and CellSize are carried through unchanged; the
// algorithms treat coordinates purely as row/column indices.
type Header struct {
	NCols     int
	NRows     int
	XLLCorner float64
	YLLCorner float64
	CellSize  float64
	NoData    float64 // sentinel written for nodata cells at the I/O boundary
}

// Grid is a row-major raster of float64 samples with per-cell validity.
//   - data holds NRows*NCols values, offset = r*NCols + c.
//   - valid[i] is false for nodata cells.
//   - minV/maxV track the extremes of data cells written so far.
type Grid struct {
	hdr   Header
	data  []float64
	valid []bool
	minV  float64
	maxV  float64
}

// New allocates a grid for the given header. All cells start as nodata and
// hold the header sentinel.
// Returns ErrInvalidDimensions if NRows or NCols is not positive.
// Complexity: O(r×c) time and memory.
func New(h Header) (*Grid, error) {
	if h.NRows <= 0 || h.NCols <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := h.NRows * h.NCols
	data := make([]float64, n)
	for i := range data {
		data[i] = h.NoData
	}
	return &Grid{
		hdr:   h,
		data:  data,
		valid: make([]bool, n),
		minV:  math.Inf(1),
		maxV:  math.Inf(-1),
	}, nil
}

// NewFrom allocates an all-nodata grid with the same header as g.
func NewFrom(g *Grid) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return New(g.hdr)
}

// NewFromSized allocates an all-nodata grid that copies g's georeferencing
// and sentinel but uses new dimensions.
func NewFromSized(g *Grid, rows, cols int) (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	h := g.hdr
	h.NRows, h.NCols = rows, cols
	return New(h)
}

// Header returns a copy of the grid header.
func (g *Grid) Header() Header { return g.hdr }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.hdr.NRows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.hdr.NCols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// NoDataValue returns the header's nodata sentinel.
func (g *Grid) NoDataValue() float64 { return g.hdr.NoData }

// Min returns the smallest data value written so far, or +Inf if none.
func (g *Grid) Min() float64 { return g.minV }

// Max returns the largest data value written so far, or -Inf if none.
func (g *Grid) Max() float64 { return g.maxV }

// InBounds reports whether (r,c) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.hdr.NRows && c >= 0 && c < g.hdr.NCols
}

// Index maps (r,c) to its row-major offset. It does not check bounds.
func (g *Grid) Index(r, c int) int { return r*g.hdr.NCols + c }

// Coordinate converts a row-major offset back to (r,c).
func (g *Grid) Coordinate(i int) (r, c int) { return i / g.hdr.NCols, i % g.hdr.NCols }

// At returns the value stored at (r,c). For nodata cells the value is the
// header sentinel; use IsNoData to tell them apart from data.
// Returns a wrapped ErrOutOfRange for cells outside the grid.
func (g *Grid) At(r, c int) (float64, error) {
	if !g.InBounds(r, c) {
		return 0, gridErrorf(ctxAt, r, c, ErrOutOfRange)
	}
	if !g.Valid(r, c) {
		return g.hdr.NoData, nil
	}
	return g.Value(r, c), nil
}

// Set writes a data value at (r,c) and folds it into Min/Max.
// Stage 1 (Validate): bounds and finiteness.
// Stage 2 (Execute): store value, mark cell valid, update extremes.
func (g *Grid) Set(r, c int, v float64) error {
	if !g.InBounds(r, c) {
		return gridErrorf(ctxSet, r, c, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return gridErrorf(ctxSet, r, c, ErrNonFinite)
	}
	g.Store(r, c, v)
	return nil
}

// IsNoData reports whether (r,c) is nodata. Cells outside the grid report true.
func (g *Grid) IsNoData(r, c int) bool {
	if !g.InBounds(r, c) {
		return true
	}
	return !g.valid[g.Index(r, c)]
}

// SetNoData marks (r,c) as nodata.
func (g *Grid) SetNoData(r, c int) error {
	if !g.InBounds(r, c) {
		return gridErrorf(ctxSetNoData, r, c, ErrOutOfRange)
	}
	g.StoreNoData(r, c)
	return nil
}

// Value returns the raw value at (r,c) without bounds checks.
func (g *Grid) Value(r, c int) float64 { return g.data[r*g.hdr.NCols+c] }

// Valid reports whether (r,c) holds data, without bounds checks.
func (g *Grid) Valid(r, c int) bool { return g.valid[r*g.hdr.NCols+c] }

// Store writes a data value without bounds or finiteness checks.
// Callers on hot paths must guarantee 0 ≤ r < Rows and 0 ≤ c < Cols.
func (g *Grid) Store(r, c int, v float64) {
	i := r*g.hdr.NCols + c
	g.data[i] = v
	g.valid[i] = true
	if v < g.minV {
		g.minV = v
	}
	if v > g.maxV {
		g.maxV = v
	}
}

// StoreNoData marks (r,c) nodata without bounds checks. Min/Max are left as is.
func (g *Grid) StoreNoData(r, c int) {
	i := r*g.hdr.NCols + c
	g.data[i] = g.hdr.NoData
	g.valid[i] = false
}

// Clone returns a deep copy of g.
// Complexity: O(r×c).
func (g *Grid) Clone() *Grid {
	out := &Grid{
		hdr:   g.hdr,
		data:  make([]float64, len(g.data)),
		valid: make([]bool, len(g.valid)),
		minV:  g.minV,
		maxV:  g.maxV,
	}
	copy(out.data, g.data)
	copy(out.valid, g.valid)
	return out
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Grid) bool {
	return a.hdr.NRows == b.hdr.NRows && a.hdr.NCols == b.hdr.NCols
}

// FromRows builds a grid from a rectangular [][]float64. Values equal to
// noData become nodata cells; this is the only place besides the I/O layer
// where the sentinel is interpreted, and it exists for tests and examples.
// Returns ErrInvalidDimensions for empty or ragged input.
func FromRows(values [][]float64, noData float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrInvalidDimensions
		}
	}
	g, err := New(Header{NRows: rows, NCols: cols, CellSize: 1, NoData: noData})
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			if v == noData {
				g.StoreNoData(r, c)
				continue
			}
			if err := g.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// String renders the grid row by row, printing nodata cells as "nd".
func (g *Grid) String() string {
	var s []byte
	for r := 0; r < g.hdr.NRows; r++ {
		s = append(s, '[')
		for c := 0; c < g.hdr.NCols; c++ {
			if c > 0 {
				s = append(s, ", "...)
			}
			if !g.Valid(r, c) {
				s = append(s, "nd"...)
				continue
			}
			s = fmt.Appendf(s, "%g", g.Value(r, c))
		}
		s = append(s, "]\n"...)
	}
	return string(s)
}

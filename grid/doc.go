// SPDX-License-Identifier: MIT

// Package grid is the raster container shared by every viewshed algorithm.
//
// What:
//
//   - Grid stores NRows×NCols float64 samples in a flat row-major buffer.
//   - Every cell carries an explicit validity flag; a nodata cell is one whose
//     flag is cleared, never one whose value happens to equal the sentinel.
//   - Header carries ESRI-style georeferencing (xllcorner, yllcorner, cellsize)
//     and the NODATA sentinel used at the I/O boundary. Geometry ignores them.
//   - Min/Max are maintained incrementally over data cells on every write.
//
// Checked accessors (At, Set, SetNoData) return wrapped sentinel errors.
// Unchecked accessors (Value, Valid, Store, StoreNoData) are the hot-loop
// fast paths used by the sweep engines; they panic like a slice index when
// given an out-of-range cell.
//
// Complexity:
//
//   - New/NewFrom/NewFromSized: O(r×c) time and memory.
//   - At/Set/Value/Store:       O(1).
//   - Diff/Downsample/Stats:    O(r×c).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols ≤ 0.
//   - ErrOutOfRange:        row/col outside the grid.
//   - ErrNonFinite:         NaN or ±Inf written to a data cell.
//   - ErrDimensionMismatch: two grids must share a shape but do not.
//   - ErrNoDataMismatch:    exactly one of two aligned cells is nodata.
//   - ErrNilGrid:           nil *Grid argument.
package grid

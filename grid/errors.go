// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: " so callers can grep logs; match with errors.Is.
var (
	// ErrInvalidDimensions indicates non-positive row or column counts.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNonFinite indicates that NaN or ±Inf was written as a data value.
	ErrNonFinite = errors.New("grid: NaN or Inf value")

	// ErrDimensionMismatch indicates two grids that must share a shape do not.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNoDataMismatch indicates a cell that is nodata in one grid but data in the other.
	ErrNoDataMismatch = errors.New("grid: nodata mismatch")

	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("grid: nil grid")
)

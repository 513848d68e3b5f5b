// SPDX-License-Identifier: MIT

// Package tiles partitions an elevation grid into axis-aligned square tiles
// whose elevations are homogeneous within a tolerance.
//
// Decomposition runs in two passes:
//
//  1. RootSquares covers the grid with the largest power-of-two squares that
//     fit an aligned lattice. It starts from S, the largest power of two not
//     exceeding min(rows, cols)/2 (at least 1), claims every S-aligned S×S
//     block whose corner is still unclaimed, then halves S down to 1.
//  2. Decompose refines every root until it is tight: all nodata, or all
//     data with max−min ≤ epsilon. A square that is not tight splits into
//     four quadrants. Size-1 squares are always tight.
//
// A tight data square is represented by the mean of its cells, computed in
// full precision. The resulting Set always partitions the grid: every cell
// belongs to exactly one square.
//
// Set.Locate maps a cell to its covering square through an R-tree built over
// the square bounds.
package tiles

// SPDX-License-Identifier: MIT

// Package asciigrid reads and writes ESRI ASCII grids (.asc).
//
// Format:
//
//	ncols        4
//	nrows        3
//	xllcorner    0.0
//	yllcorner    0.0
//	cellsize     30
//	NODATA_value -9999
//	<nrows lines of ncols whitespace-separated values, top row first>
//
// Header keys are matched case-insensitively and may come in any order.
// ncols, nrows and cellsize are required; NODATA_value defaults to
// grid.DefaultNoData. xllcenter/yllcenter are accepted in place of the
// corner keys and converted to corners. The header ends at the first token
// that is not a key.
//
// Values equal to the NODATA sentinel become nodata cells. Write emits the
// sentinel for nodata cells and shortest round-trip formatting for data.
package asciigrid

// SPDX-License-Identifier: MIT

// Package render draws grids as static PNG/SVG/PDF heatmaps with gonum/plot.
//
// A heatmap is built from layers, bottom to top:
//
//	base      the grid's values through a Colorizer
//	nodata    nodata cells in a flat colour
//	viewshed  cells visible from the viewpoint (optional)
//	viewpoint a marker at the viewpoint (optional)
//
// Colorizers map a value scaled to [0,1] onto piecewise-linear colour stops.
// The built-ins are Greyscale, BlueGreenRed, Topo and Flow. WithExponent
// bends the scale before colouring, which brings out detail in flat or
// spiky terrain.
//
// The output format follows the file extension accepted by plot.Save.
package render

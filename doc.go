// Package viewshed computes viewsheds and whole-grid view counts over
// raster elevation models.
//
// What is a viewshed?
//
//	The set of grid cells whose center is visible from the center of a
//	chosen viewpoint cell, assuming straight lines of sight over the
//	terrain surface. A view count grid stores, for every cell, how many
//	cells its viewshed holds.
//
// How it works:
//
//	An angular sweep turns around the viewpoint once. Every target cell
//	contributes three events: it enters the active set at the first angle
//	it covers, is queried at the angle of its center, and leaves at its
//	last angle. The active set is a balanced tree keyed by distance and
//	augmented with the subtree maximum gradient, so "is anything nearer
//	steeper than me?" costs O(log n). A full viewshed is O(n log n).
//
// Approximations:
//
//	tiles groups near-constant regions into power-of-two squares; the same
//	sweep then runs over squares instead of cells. viewcount adds block
//	averaging and nearest-neighbor smoothing to trade accuracy for speed.
//
// Under the hood:
//
//	grid/        raster container, nodata flags, diff, downsample, stats
//	activelist/  distance-keyed AVL tree with max-gradient queries
//	tiles/       root tiling, tightness refinement, R-tree cell lookup
//	sweep/       event streams and the sweep loop, exact and per square
//	viewcount/   exact, approximate, simplified and nearest-neighbor counts
//	asciigrid/   ESRI ASCII (.asc) reader and writer
//	render/      PNG heatmaps with viewshed overlays
//	terrain/     deterministic synthetic terrains for tests and benchmarks
//	cmd/viewshed  command-line front end
//
// Quick ASCII example, looking east from the left cell:
//
//	 elev:  0   0  10   0  100
//	 seen:  1   1   1   0   1
//
// The spike hides the cell behind it; the tall cell rises above its
// shadow.
//
//	go get github.com/katalvlaran/viewshed
package viewshed

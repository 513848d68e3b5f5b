// SPDX-License-Identifier: MIT

// Package viewcount computes whole-grid view counts: for every data cell, the
// number of cells visible from it.
//
// Four strategies trade accuracy for speed:
//
//	Exact           one exact sweep per data cell              O(n² log n)
//	Approx          decompose once, one square sweep per tile  O(m² log m + n)
//	Simplified      exact counts on a k×k block-mean grid      O((n/k²)² log n)
//	NearestNeighbor smooth an existing count grid              O(n)
//
// Exact, Approx and Simplified fan independent sweeps out over a bounded
// worker pool (golang.org/x/sync/errgroup). The input grid is only read. Each
// worker writes its own slot of a preallocated result slice and the output
// grid is filled after the pool drains. The context is checked before every
// viewpoint; a cancelled run returns ctx.Err() and no grid.
//
// Options:
//   - WithWorkers(n): pool size, default GOMAXPROCS.
//   - WithProgress(fn): called after every finished viewpoint with (done, total).
//     Calls are serialized.
//   - WithAreaScaling(): Simplified multiplies coarse counts by k².
//
// Count grids copy the input header. Nodata cells of the input stay nodata.
package viewcount

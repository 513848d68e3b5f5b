// SPDX-License-Identifier: MIT

// Package sweep computes viewsheds over elevation grids with an angular
// plane sweep.
//
// Every target (a cell, or a square tile in the approximate variant) covers
// an angular interval around the viewpoint. The sweep rotates a ray through
// [0, 2π), starting due west (same row, smaller column) and turning through
// north. Each target contributes three events:
//
//	Start at the interval's lower angle   → insert into the active list
//	Query at the target's center angle    → decide visibility
//	End   at the interval's upper angle   → remove from the active list
//
// Targets straddling the initial ray are pre-active: they are inserted before
// the sweep begins, leave at their lower angle and re-enter at their upper
// angle.
//
// Events are ordered by angle, then distance, then kind (End < Query < Start),
// so an obstruction leaves before another enters at the same place. A query
// marks its target visible iff the target's gradient is ≥ the largest
// gradient of any active entry no farther away; ties favour visible.
//
// Nodata targets generate no events. They never obstruct and keep the nodata
// value the output grid starts with.
//
// Layering:
//   - CellStream / SquareStream build sorted event streams.
//   - Stream.Run drives the active list and reports verdicts.
//   - Viewshed / ApproxViewshed paint verdicts into a grid;
//     VisibleCount / ApproxVisibleCount only count them.
//
// All sweep state is local to one call; concurrent calls on the same input
// grid are safe as long as nobody writes to it.
package sweep

// SPDX-License-Identifier: MIT

// Package activelist implements the obstruction set used by the angular
// viewshed sweep: an AVL tree keyed by (distance, id) where every node also
// caches the maximum gradient found in its subtree.
//
// The list answers one question quickly: "what is the steepest gradient
// among entries no farther than d?". The subtree maximum is repaired on
// every rotation, so Insert, Delete and MaxGradientAtOrBelow are all
// O(log n).
//
// Keys:
//   - Entries are ordered by distance, then by id. The id belongs to the
//     caller (the sweep uses the target cell or square index) and makes the
//     key unique even when two distances collide in floating point.
//   - New seeds the list with one sentinel entry at distance +Inf, id -1 and
//     gradient 0. The sentinel is never returned by queries with a finite
//     distance and is not counted by Len.
//
// Errors:
//   - ErrDuplicateKey when Insert meets an existing (distance, id).
//   - ErrKeyNotFound when Delete is asked for a key that is absent.
//
// A List is not safe for concurrent use. Each sweep owns its own.
package activelist

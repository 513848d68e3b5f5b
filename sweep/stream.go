// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/viewshed/grid"
	"github.com/katalvlaran/viewshed/tiles"
)

// Stream is a sorted event sequence for one viewpoint plus the entries that
// must be active before the sweep starts.
type Stream struct {
	events []Event
	pre    []Event
}

// Events returns the sorted events. The slice is owned by the stream.
func (s *Stream) Events() []Event { return s.events }

// PreActive returns the Start entries seeded before angle 0.
func (s *Stream) PreActive() []Event { return s.pre }

// add appends the event triple of one target.
func (s *Stream) add(pre bool, id int, lo, mid, hi, dist, grad float64) {
	ev := func(k Kind, a float64) Event {
		return Event{Kind: k, Target: id, Alpha: a, Distance: dist, Gradient: grad}
	}
	if pre {
		s.pre = append(s.pre, ev(Start, hi))
		s.events = append(s.events, ev(End, lo), ev(Query, mid), ev(Start, hi))
		return
	}
	s.events = append(s.events, ev(Start, lo), ev(Query, mid), ev(End, hi))
}

func (s *Stream) sort() { slices.SortFunc(s.events, Compare) }

// CellStream builds the exact event stream for viewpoint (row, col).
// Stage 1 (Validate): grid present, viewpoint in bounds and data.
// Stage 2 (Generate): one triple per data cell except the viewpoint.
// Stage 3 (Order): sort by Compare.
// Complexity: O(n log n), n = cells.
func CellStream(elev *grid.Grid, row, col int) (*Stream, error) {
	if elev == nil {
		return nil, grid.ErrNilGrid
	}
	if !elev.InBounds(row, col) || !elev.Valid(row, col) {
		return nil, fmt.Errorf("sweep: viewpoint (%d,%d): %w", row, col, ErrInvalidViewpoint)
	}

	vr, vc := float64(row), float64(col)
	vz := elev.Value(row, col)
	s := &Stream{events: make([]Event, 0, 3*(elev.Len()-1))}
	for r := 0; r < elev.Rows(); r++ {
		for c := 0; c < elev.Cols(); c++ {
			if (r == row && c == col) || !elev.Valid(r, c) {
				continue
			}
			tr, tc := float64(r), float64(c)
			lo, mid, hi := extent(vr, vc, tr, tc, 0.5)
			d := math.Hypot(tr-vr, tc-vc)
			s.add(r == row && c < col, elev.Index(r, c), lo, mid, hi, d, (elev.Value(r, c)-vz)/d)
		}
	}
	s.sort()
	return s, nil
}

// SquareStream builds the approximate event stream with square vp of set as
// the viewpoint. Each square acts as a point at its center with its
// representative elevation.
// A square is pre-active iff the viewpoint center row lies strictly inside
// its row extent (R−0.5, R+Size−0.5) and its column lies left of the
// viewpoint center. Squares whose edge lies on the initial ray start at
// angle 0 or end at 2π instead.
// Complexity: O(m log m), m = squares.
func SquareStream(set *tiles.Set, vp int) (*Stream, error) {
	if set == nil {
		return nil, ErrInvalidViewpoint
	}
	if vp < 0 || vp >= set.Len() || set.Square(vp).NoData {
		return nil, fmt.Errorf("sweep: viewpoint square %d: %w", vp, ErrInvalidViewpoint)
	}

	v := set.Square(vp)
	vr, vc := v.CenterRow(), v.CenterCol()
	s := &Stream{events: make([]Event, 0, 3*(set.Len()-1))}
	for i := 0; i < set.Len(); i++ {
		t := set.Square(i)
		if i == vp || t.NoData {
			continue
		}
		tr, tc := t.CenterRow(), t.CenterCol()
		lo, mid, hi := extent(vr, vc, tr, tc, float64(t.Size)/2)
		d := math.Hypot(tr-vr, tc-vc)
		s.add(straddlesInitialRay(t, vr, vc), i, lo, mid, hi, d, (t.Elev-v.Elev)/d)
	}
	s.sort()
	return s, nil
}

// straddlesInitialRay reports whether t crosses the ray at angle 0 from
// (vr, vc).
func straddlesInitialRay(t tiles.Square, vr, vc float64) bool {
	return vr > float64(t.R)-0.5 && vr < float64(t.R+t.Size)-0.5 && float64(t.C) < vc
}

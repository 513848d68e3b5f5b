// SPDX-License-Identifier: MIT

package sweep

import "math"

// Kind is the event type. The numeric order is the tie-break order.
type Kind uint8

const (
	End Kind = iota
	Query
	Start
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case End:
		return "end"
	case Query:
		return "query"
	case Start:
		return "start"
	}
	return "unknown"
}

// Event is one step of the sweep. Target is the cell index (exact sweep) or
// square index (approximate sweep) and doubles as the active-list id.
type Event struct {
	Kind     Kind
	Target   int
	Alpha    float64
	Distance float64
	Gradient float64
}

// Compare orders events by Alpha, then Distance, then Kind.
func Compare(a, b Event) int {
	switch {
	case a.Alpha < b.Alpha:
		return -1
	case a.Alpha > b.Alpha:
		return 1
	case a.Distance < b.Distance:
		return -1
	case a.Distance > b.Distance:
		return 1
	}
	return int(a.Kind) - int(b.Kind)
}

// Alpha returns the sweep angle from viewpoint (vr, vc) to point (tr, tc),
// normalized to [0, 2π). Angle 0 points toward smaller columns on the same
// row and angles grow toward smaller rows.
func Alpha(vr, vc, tr, tc float64) float64 {
	a := math.Atan2(vr-tr, vc-tc)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// extent returns the min and max corner angles and the center angle of an
// axis-aligned box of half-width h centered at (tr, tc).
// A box below the viewpoint row whose top edge lies on the initial ray has
// corners at angle 0; those are taken as 2π so the extent spans the box.
func extent(vr, vc, tr, tc, h float64) (lo, mid, hi float64) {
	corner := func(r, c float64) float64 {
		a := Alpha(vr, vc, r, c)
		if a == 0 && tr > vr {
			return 2 * math.Pi
		}
		return a
	}
	ll := corner(tr-h, tc-h)
	lr := corner(tr-h, tc+h)
	ul := corner(tr+h, tc-h)
	ur := corner(tr+h, tc+h)
	return min(ll, lr, ul, ur), Alpha(vr, vc, tr, tc), max(ll, lr, ul, ur)
}

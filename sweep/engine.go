// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/viewshed/activelist"
)

// Verdict receives the visibility decision for one target.
type Verdict func(target int, visible bool)

// Run processes the stream in order and calls visit once per Query event.
// An error means the stream violated the active-list key contract; it is
// not expected from streams built by this package.
// Complexity: O(e log e), e = events.
func (s *Stream) Run(visit Verdict) error {
	active := activelist.New()
	for _, e := range s.pre {
		if err := active.Insert(e.Distance, e.Target, e.Gradient); err != nil {
			return fmt.Errorf("sweep: seed target %d: %w", e.Target, err)
		}
	}
	for _, e := range s.events {
		switch e.Kind {
		case Start:
			if err := active.Insert(e.Distance, e.Target, e.Gradient); err != nil {
				return fmt.Errorf("sweep: start target %d: %w", e.Target, err)
			}
		case End:
			if err := active.Delete(e.Distance, e.Target); err != nil {
				return fmt.Errorf("sweep: end target %d: %w", e.Target, err)
			}
		case Query:
			visit(e.Target, e.Gradient >= active.MaxGradientAtOrBelow(e.Distance))
		}
	}
	return nil
}

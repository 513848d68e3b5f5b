package activelist

import (
	"fmt"
	"math"
)

// Test bridge: exposes structural checks to activelist_test without
// widening the production API.

// Height returns the AVL height of the tree, sentinel included.
func (l *List) Height() int { return heightOf(l.root) }

// CheckInvariants walks the tree and reports the first broken invariant:
// key order, cached height, AVL balance or cached subtree maximum.
func (l *List) CheckInvariants() error {
	count := 0
	var prev *node
	var walk func(n *node) (int, float64, error)
	walk = func(n *node) (int, float64, error) {
		if n == nil {
			return 0, math.Inf(-1), nil
		}
		hl, ml, err := walk(n.left)
		if err != nil {
			return 0, 0, err
		}
		if prev != nil && !less(prev.distance, prev.id, n.distance, n.id) {
			return 0, 0, fmt.Errorf("order broken at (%g,%d)", n.distance, n.id)
		}
		prev = n
		count++
		hr, mr, err := walk(n.right)
		if err != nil {
			return 0, 0, err
		}
		if h := 1 + max(hl, hr); h != n.height {
			return 0, 0, fmt.Errorf("height at (%g,%d) = %d; want %d", n.distance, n.id, n.height, h)
		}
		if hl-hr > 1 || hr-hl > 1 {
			return 0, 0, fmt.Errorf("unbalanced at (%g,%d): %d vs %d", n.distance, n.id, hl, hr)
		}
		if m := max(n.gradient, ml, mr); m != n.maxGrad {
			return 0, 0, fmt.Errorf("maxGrad at (%g,%d) = %g; want %g", n.distance, n.id, n.maxGrad, m)
		}
		return n.height, n.maxGrad, nil
	}
	if _, _, err := walk(l.root); err != nil {
		return err
	}
	if count != l.n+1 {
		return fmt.Errorf("node count %d; want %d", count, l.n+1)
	}
	return nil
}

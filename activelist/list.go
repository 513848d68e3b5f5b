// SPDX-License-Identifier: MIT

package activelist

import (
	"fmt"
	"math"
)

// SentinelID is the id of the +Inf entry every List starts with.
const SentinelID = -1

// node is one AVL node. maxGrad caches the largest gradient in the subtree
// rooted here, including the node itself.
type node struct {
	distance float64
	id       int
	gradient float64
	maxGrad  float64
	height   int
	left     *node
	right    *node
}

// List is a distance-ordered set of (distance, id, gradient) entries.
type List struct {
	root *node
	n    int // entries excluding the sentinel
}

// New returns a list seeded with the +Inf sentinel.
// Complexity: O(1).
func New() *List {
	return &List{root: newNode(math.Inf(1), SentinelID, 0)}
}

// Len returns the number of entries, not counting the sentinel.
func (l *List) Len() int { return l.n }

// Insert adds an entry. Returns a wrapped ErrDuplicateKey if (distance, id)
// is already present; the list is left unchanged in that case.
// Complexity: O(log n).
func (l *List) Insert(distance float64, id int, gradient float64) error {
	var err error
	l.root, err = insert(l.root, distance, id, gradient)
	if err != nil {
		return fmt.Errorf("List.Insert(%g,%d): %w", distance, id, err)
	}
	l.n++
	return nil
}

// Delete removes the entry with key (distance, id). Returns a wrapped
// ErrKeyNotFound if it is absent. The sentinel cannot be deleted.
// Complexity: O(log n).
func (l *List) Delete(distance float64, id int) error {
	if id == SentinelID && math.IsInf(distance, 1) {
		return fmt.Errorf("List.Delete(%g,%d): %w", distance, id, ErrKeyNotFound)
	}
	var err error
	l.root, err = remove(l.root, distance, id)
	if err != nil {
		return fmt.Errorf("List.Delete(%g,%d): %w", distance, id, err)
	}
	l.n--
	return nil
}

// MaxGradientAtOrBelow returns the largest gradient among entries whose
// distance is ≤ distance, or -Inf if there are none.
// Complexity: O(log n).
func (l *List) MaxGradientAtOrBelow(distance float64) float64 {
	best := math.Inf(-1)
	for cur := l.root; cur != nil; {
		if cur.distance <= distance {
			// cur and its whole left subtree qualify.
			best = max(best, cur.gradient, maxOf(cur.left))
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	return best
}

// ---------- AVL internals ----------

func newNode(distance float64, id int, gradient float64) *node {
	return &node{distance: distance, id: id, gradient: gradient, maxGrad: gradient, height: 1}
}

// less orders keys by distance, then id.
func less(d1 float64, id1 int, d2 float64, id2 int) bool {
	if d1 != d2 {
		return d1 < d2
	}
	return id1 < id2
}

func heightOf(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func maxOf(n *node) float64 {
	if n == nil {
		return math.Inf(-1)
	}
	return n.maxGrad
}

// fix recomputes the cached height and subtree maximum from the children.
func (n *node) fix() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
	n.maxGrad = max(n.gradient, maxOf(n.left), maxOf(n.right))
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	y.fix()
	x.fix()
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	x.fix()
	y.fix()
	return y
}

// rebalance restores the AVL invariant at n after one child changed height.
func rebalance(n *node) *node {
	n.fix()
	switch bf := heightOf(n.left) - heightOf(n.right); {
	case bf > 1:
		if heightOf(n.left.left) < heightOf(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if heightOf(n.right.right) < heightOf(n.right.left) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func insert(n *node, distance float64, id int, gradient float64) (*node, error) {
	if n == nil {
		return newNode(distance, id, gradient), nil
	}
	var err error
	switch {
	case less(distance, id, n.distance, n.id):
		n.left, err = insert(n.left, distance, id, gradient)
	case less(n.distance, n.id, distance, id):
		n.right, err = insert(n.right, distance, id, gradient)
	default:
		return n, ErrDuplicateKey
	}
	if err != nil {
		return n, err
	}
	return rebalance(n), nil
}

func remove(n *node, distance float64, id int) (*node, error) {
	if n == nil {
		return nil, ErrKeyNotFound
	}
	var err error
	switch {
	case less(distance, id, n.distance, n.id):
		n.left, err = remove(n.left, distance, id)
	case less(n.distance, n.id, distance, id):
		n.right, err = remove(n.right, distance, id)
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		// Replace with the in-order successor, then drop it from the right.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.distance, n.id, n.gradient = succ.distance, succ.id, succ.gradient
		n.right, err = remove(n.right, succ.distance, succ.id)
	}
	if err != nil {
		return n, err
	}
	return rebalance(n), nil
}

package orthtree

import (
	"iter"

	"github.com/aukilabs/orthtree/vector"
)

// View is a read-only sequence of the nodes of a generated tree, in
// breadth-first order. The zero View is empty.
type View[T vector.Scalar] struct {
	nodes []Node[T]
}

// Len returns the number of nodes in the view.
func (v View[T]) Len() int {
	return len(v.nodes)
}

// At returns the node at index i.
func (v View[T]) At(i int) (Node[T], error) {
	if i < 0 || i >= len(v.nodes) {
		return Node[T]{}, nodeOutOfRange(i, len(v.nodes))
	}
	return v.nodes[i], nil
}

// All returns every node with its index. The sequence can be ranged over any
// number of times.
func (v View[T]) All() iter.Seq2[int, Node[T]] {
	return func(yield func(int, Node[T]) bool) {
		for i, n := range v.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Leaves returns every leaf with its index.
func (v View[T]) Leaves() iter.Seq2[int, Node[T]] {
	return func(yield func(int, Node[T]) bool) {
		for i, n := range v.nodes {
			if n.IsLeaf() && !yield(i, n) {
				return
			}
		}
	}
}

// Children returns the children of the node at index i.
func (v View[T]) Children(i int) ([]Node[T], error) {
	n, err := v.At(i)
	if err != nil {
		return nil, err
	}
	if n.IsLeaf() {
		return nil, nil
	}

	children := make([]Node[T], n.childCount)
	copy(children, v.nodes[n.firstChild:n.firstChild+n.childCount])
	return children, nil
}

// Locate descends from the root through the child links and returns the
// deepest node containing p. It returns false when p is outside the root.
func (v View[T]) Locate(p vector.Vec[T]) (Node[T], bool) {
	if len(v.nodes) == 0 || !v.nodes[0].ContainsPoint(p) {
		return Node[T]{}, false
	}

	n := v.nodes[0]
	for !n.IsLeaf() {
		next, ok := v.childContaining(n, p)
		if !ok {
			// Rounding at the outer edge of a floating point region.
			break
		}
		n = next
	}
	return n, true
}

// childContaining picks the octant of p directly: child i is offset along
// dimension d when bit d of i is set, and an offset child starts at the
// parent centre.
func (v View[T]) childContaining(n Node[T], p vector.Vec[T]) (Node[T], bool) {
	octant := 0
	for d := 0; d < p.Dims(); d++ {
		if p.At(d) >= n.centre.At(d) {
			octant |= 1 << d
		}
	}

	child := v.nodes[n.firstChild+octant]
	return child, child.ContainsPoint(p)
}

// Depth returns the highest node level, or -1 for an empty view.
func (v View[T]) Depth() int {
	if len(v.nodes) == 0 {
		return -1
	}
	// Breadth-first order puts the deepest level last.
	return v.nodes[len(v.nodes)-1].level
}

// LevelCounts returns the number of nodes at each level, indexed by level.
func (v View[T]) LevelCounts() []int {
	counts := make([]int, v.Depth()+1)
	for _, n := range v.nodes {
		counts[n.level]++
	}
	return counts
}

package orthtree

import (
	"github.com/aukilabs/orthtree/vector"
	"github.com/segmentio/encoding/json"
)

// Node is an axis-aligned region of a tree. Nodes are values: the accessors
// return copies, so neither callers nor subdivision conditions can alter the
// geometry stored in a tree.
type Node[T vector.Scalar] struct {
	pos    vector.Vec[T]
	size   vector.Vec[T]
	centre vector.Vec[T]
	level  int

	index  int
	parent int

	// Children occupy [firstChild, firstChild+childCount) in the node
	// storage.
	firstChild int
	childCount int
}

func newNode[T vector.Scalar](pos, size vector.Vec[T], level, index, parent int) Node[T] {
	// pos and size always share the tree dimension count.
	centre, _ := pos.AddVec(size.Div(2))

	return Node[T]{
		pos:    pos,
		size:   size,
		centre: centre,
		level:  level,
		index:  index,
		parent: parent,
	}
}

// Pos returns the minimum corner of the node.
func (n Node[T]) Pos() vector.Vec[T] {
	return n.pos.Clone()
}

// Size returns the node extents.
func (n Node[T]) Size() vector.Vec[T] {
	return n.size.Clone()
}

// Centre returns Pos + Size/2.
func (n Node[T]) Centre() vector.Vec[T] {
	return n.centre.Clone()
}

// Level returns the node depth. The root is at level 0.
func (n Node[T]) Level() int {
	return n.level
}

// Index returns the node position in breadth-first order.
func (n Node[T]) Index() int {
	return n.index
}

// Parent returns the index of the parent node, or -1 for the root.
func (n Node[T]) Parent() int {
	return n.parent
}

// IsLeaf reports whether the node was not subdivided. While a subdivision
// condition evaluates a node, the node is always reported as a leaf.
func (n Node[T]) IsLeaf() bool {
	return n.childCount == 0
}

// Children returns the indexes of the node children: none for a leaf, 2^D
// otherwise.
func (n Node[T]) Children() []int {
	if n.childCount == 0 {
		return nil
	}

	children := make([]int, n.childCount)
	for i := range children {
		children[i] = n.firstChild + i
	}
	return children
}

// ContainsPoint reports whether pos[d] <= p[d] < pos[d]+size[d] along every
// dimension d. The upper bound is exclusive so that a point on a boundary
// shared by adjacent nodes belongs to exactly one of them.
func (n Node[T]) ContainsPoint(p vector.Vec[T]) bool {
	if p.Dims() != n.pos.Dims() || p.Dims() == 0 {
		return false
	}

	for d := 0; d < p.Dims(); d++ {
		if p.At(d) < n.pos.At(d) || p.At(d) >= n.pos.At(d)+n.size.At(d) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the node geometry and links.
func (n Node[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index    int           `json:"index"`
		Parent   int           `json:"parent"`
		Level    int           `json:"level"`
		Pos      vector.Vec[T] `json:"pos"`
		Size     vector.Vec[T] `json:"size"`
		Centre   vector.Vec[T] `json:"centre"`
		Leaf     bool          `json:"leaf"`
		Children []int         `json:"children,omitempty"`
	}{
		Index:    n.index,
		Parent:   n.parent,
		Level:    n.level,
		Pos:      n.pos,
		Size:     n.size,
		Centre:   n.centre,
		Leaf:     n.IsLeaf(),
		Children: n.Children(),
	})
}

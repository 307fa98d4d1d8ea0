// Package orthtree implements a generic N-dimensional spatial subdivision
// tree: a quadtree in 2 dimensions, an octree in 3, and their generalization
// to any dimension count D.
//
// A tree is generated in one call from a root region, a maximum depth and a
// subdivision condition. Nodes are stored in a single breadth-first slice and
// children are referenced by their position in that slice.
//
// A Tree is not safe for concurrent use.
package orthtree

import (
	"iter"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/orthtree/featureflag"
	"github.com/aukilabs/orthtree/vector"
	"github.com/google/uuid"
)

const (
	// MaxDimensions is the highest supported dimension count. A subdivided
	// node has 2^D children.
	MaxDimensions = 16

	defaultName = "orthtree"
)

// Tree is an N-dimensional orthtree.
type Tree[T vector.Scalar] struct {
	id         string
	name       string
	dims       int
	fanout     int
	flags      featureflag.FeatureFlag
	generation uint64
	nodes      []Node[T]
}

// Option configures a tree.
type Option func(*options)

type options struct {
	name  string
	flags featureflag.FeatureFlag
}

// WithName sets the name reported in the tree metrics and logs. Metrics are
// labelled by name only, so trees sharing a name, including the default
// "orthtree", overwrite each other's node count gauge. Give every tree whose
// metrics matter its own name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithFeatureFlags sets the flags that turn optional tree behaviors off.
func WithFeatureFlags(flags featureflag.FeatureFlag) Option {
	return func(o *options) {
		o.flags = flags
	}
}

// New returns an empty tree with the given dimension count.
func New[T vector.Scalar](dims int, opts ...Option) (*Tree[T], error) {
	if dims < 1 || dims > MaxDimensions {
		return nil, errors.New("unsupported tree dimension count").
			WithType(ErrTypeInvalidDimensions).
			WithTag("dims", dims).
			WithTag("max_dims", MaxDimensions)
	}

	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = defaultName
	}

	return &Tree[T]{
		id:     uuid.NewString(),
		name:   o.name,
		dims:   dims,
		fanout: 1 << dims,
		flags:  o.flags,
	}, nil
}

// NewQuadtree returns an empty 2-dimensional tree.
func NewQuadtree[T vector.Scalar](opts ...Option) *Tree[T] {
	t, _ := New[T](2, opts...)
	return t
}

// NewOctree returns an empty 3-dimensional tree.
func NewOctree[T vector.Scalar](opts ...Option) *Tree[T] {
	t, _ := New[T](3, opts...)
	return t
}

// ID returns the tree unique identifier.
func (t *Tree[T]) ID() string {
	return t.id
}

// Name returns the name reported in the tree metrics and logs.
func (t *Tree[T]) Name() string {
	return t.name
}

// Dims returns the tree dimension count.
func (t *Tree[T]) Dims() int {
	return t.dims
}

// Generation returns the number of successful Generate calls.
func (t *Tree[T]) Generation() uint64 {
	return t.generation
}

// Size returns the number of nodes.
func (t *Tree[T]) Size() int {
	return len(t.nodes)
}

// At returns the node at index i in breadth-first order.
func (t *Tree[T]) At(i int) (Node[T], error) {
	return t.View().At(i)
}

// All returns every node with its index, in breadth-first order.
func (t *Tree[T]) All() iter.Seq2[int, Node[T]] {
	return t.View().All()
}

// Leaves returns every leaf with its index, in breadth-first order.
func (t *Tree[T]) Leaves() iter.Seq2[int, Node[T]] {
	return t.View().Leaves()
}

// Children returns the children of the node at index i.
func (t *Tree[T]) Children(i int) ([]Node[T], error) {
	return t.View().Children(i)
}

// Locate returns the deepest node containing p.
func (t *Tree[T]) Locate(p vector.Vec[T]) (Node[T], bool) {
	return t.View().Locate(p)
}

// Depth returns the highest node level, or -1 for an empty tree.
func (t *Tree[T]) Depth() int {
	return t.View().Depth()
}

// LevelCounts returns the number of nodes at each level.
func (t *Tree[T]) LevelCounts() []int {
	return t.View().LevelCounts()
}

// View returns a read-only view of the current nodes. The view is not
// affected by later generations.
func (t *Tree[T]) View() View[T] {
	return View[T]{nodes: t.nodes}
}

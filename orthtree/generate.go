package orthtree

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/orthtree/vector"
)

// SubdivisionCondition decides whether a node is subdivided. It receives a
// copy of the candidate node and may be called any number of times.
type SubdivisionCondition[T vector.Scalar] interface {
	// Subdivide reports whether n should be split into 2^D children.
	// Returning an error aborts the generation.
	Subdivide(n Node[T]) (bool, error)
}

// SubdivisionFunc is an adapter to use an ordinary function as a
// SubdivisionCondition.
type SubdivisionFunc[T vector.Scalar] func(n Node[T]) (bool, error)

func (f SubdivisionFunc[T]) Subdivide(n Node[T]) (bool, error) {
	return f(n)
}

// SubdivideIf wraps an infallible predicate into a SubdivisionCondition.
func SubdivideIf[T vector.Scalar](f func(n Node[T]) bool) SubdivisionCondition[T] {
	return SubdivisionFunc[T](func(n Node[T]) (bool, error) {
		return f(n), nil
	})
}

// Generate rebuilds the tree over the region going from lower to upper.
//
// Nodes are processed breadth-first starting with the root at level 0. A node
// whose level is lower than maxDepth and for which cond returns true is split
// into 2^D children of half its size. Child i is offset by the child size
// along every dimension d whose bit is set in i.
//
// When an error is returned the tree keeps its previous nodes.
func (t *Tree[T]) Generate(lower, upper vector.Vec[T], maxDepth int, cond SubdivisionCondition[T]) error {
	start := time.Now()

	nodes, err := t.generate(lower, upper, maxDepth, cond)
	elapsed := time.Since(start)
	if err != nil {
		t.instrumentGenerationFailure(err, elapsed)
		t.logGenerationFailure(err, maxDepth)
		return err
	}

	t.nodes = nodes
	t.generation++

	t.instrumentGeneration(len(nodes), elapsed)
	t.logGeneration(maxDepth, elapsed)
	return nil
}

func (t *Tree[T]) generate(lower, upper vector.Vec[T], maxDepth int, cond SubdivisionCondition[T]) ([]Node[T], error) {
	if err := t.validate(lower, upper, maxDepth, cond); err != nil {
		return nil, err
	}

	size, err := upper.SubVec(lower)
	if err != nil {
		return nil, err
	}

	var queue nodeQueue[T]
	queue.push(newNode(lower.Clone(), size, 0, 0, -1))

	// Indexes are handed out in enqueue order. The queue is FIFO, so a node
	// lands in storage at the index it was given when enqueued.
	reserved := 1

	var nodes []Node[T]
	for {
		n, ok := queue.pop()
		if !ok {
			break
		}

		if n.level < maxDepth {
			subdivide, err := cond.Subdivide(n)
			if err != nil {
				return nil, errors.New("subdivision condition failed").
					WithType(ErrTypeSubdivisionCondition).
					WithTag("index", n.index).
					WithTag("level", n.level).
					Wrap(err)
			}

			if subdivide {
				n.firstChild = reserved
				n.childCount = t.fanout

				half := n.size.Div(2)
				for i := 0; i < t.fanout; i++ {
					pos, _ := n.pos.AddMasked(half, uint64(i))
					queue.push(newNode(pos, half, n.level+1, reserved, n.index))
					reserved++
				}
			}
		}

		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (t *Tree[T]) validate(lower, upper vector.Vec[T], maxDepth int, cond SubdivisionCondition[T]) error {
	if lower.Dims() != t.dims || upper.Dims() != t.dims {
		return errors.New("bounds dimension count differs from the tree's").
			WithType(ErrTypeDimensionMismatch).
			WithTag("dims", t.dims).
			WithTag("lower_dims", lower.Dims()).
			WithTag("upper_dims", upper.Dims())
	}

	if !upper.GreaterThan(lower) {
		return errors.New("upper bounds must be greater than lower bounds along every dimension").
			WithType(ErrTypeInvalidBounds).
			WithTag("lower", lower.String()).
			WithTag("upper", upper.String())
	}

	if maxDepth < 0 {
		return errors.New("max depth must not be negative").
			WithType(ErrTypeInvalidDepth).
			WithTag("max_depth", maxDepth)
	}

	if cond == nil {
		return errors.New("subdivision condition is nil").
			WithType(ErrTypeInvalidCondition)
	}
	return nil
}

// nodeQueue is a FIFO of nodes waiting to be resolved.
type nodeQueue[T vector.Scalar] struct {
	items []Node[T]
	head  int
}

func (q *nodeQueue[T]) push(n Node[T]) {
	q.items = append(q.items, n)
}

func (q *nodeQueue[T]) pop() (Node[T], bool) {
	if q.head == len(q.items) {
		return Node[T]{}, false
	}

	n := q.items[q.head]
	q.items[q.head] = Node[T]{}
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0

	case q.head >= minQueueCompaction && q.head*2 >= len(q.items):
		remaining := copy(q.items, q.items[q.head:])
		clear(q.items[remaining:])
		q.items = q.items[:remaining]
		q.head = 0
	}
	return n, true
}

const minQueueCompaction = 1024

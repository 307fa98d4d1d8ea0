package orthtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/orthtree/vector"
)

const (
	// ErrTypeInvalidDimensions is the error type for a tree or vector
	// configured with an unsupported dimension count.
	ErrTypeInvalidDimensions = vector.ErrTypeInvalidDimensions

	// ErrTypeOutOfRange is the error type for a node index that is not lower
	// than the tree size. The error carries the "index" and "size" tags.
	ErrTypeOutOfRange = vector.ErrTypeOutOfRange

	// ErrTypeDimensionMismatch is the error type for bounds or points whose
	// dimension count differs from the tree's.
	ErrTypeDimensionMismatch = vector.ErrTypeDimensionMismatch

	// ErrTypeInvalidBounds is the error type for generation bounds that do not
	// describe a region with a positive extent along every dimension.
	ErrTypeInvalidBounds = "invalid_bounds"

	// ErrTypeInvalidDepth is the error type for a negative maximum depth.
	ErrTypeInvalidDepth = "invalid_depth"

	// ErrTypeInvalidCondition is the error type for a missing subdivision
	// condition.
	ErrTypeInvalidCondition = "invalid_condition"

	// ErrTypeSubdivisionCondition is the error type for a generation aborted
	// because the subdivision condition failed. The condition error is
	// wrapped.
	ErrTypeSubdivisionCondition = "subdivision_condition_failed"
)

func nodeOutOfRange(index, size int) error {
	return errors.New("node index is out of range").
		WithType(ErrTypeOutOfRange).
		WithTag("index", index).
		WithTag("size", size)
}

package vector

import "github.com/aukilabs/go-tooling/pkg/errors"

const (
	// ErrTypeInvalidDimensions is the error type for a dimension count lower
	// than 1.
	ErrTypeInvalidDimensions = "invalid_dimensions"

	// ErrTypeOutOfRange is the error type for an index that does not address
	// an existing element.
	ErrTypeOutOfRange = "out_of_range"

	// ErrTypeDimensionMismatch is the error type for an operation mixing
	// vectors of different dimension counts.
	ErrTypeDimensionMismatch = "dimension_mismatch"
)

func outOfRange(index, dims int) error {
	return errors.New("vector component index is out of range").
		WithType(ErrTypeOutOfRange).
		WithTag("index", index).
		WithTag("dims", dims)
}

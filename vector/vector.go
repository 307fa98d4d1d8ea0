// Package vector provides the fixed-dimension coordinate type used to describe
// orthtree regions.
package vector

import (
	"fmt"
	"math"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/viant/vec/search"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a vector can hold. Every type in the
// set supports arithmetic and can be converted to float64 for a square root.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec is a tuple of numeric components whose dimension is fixed when the
// vector is created.
type Vec[T Scalar] struct {
	c []T
}

// New returns a zero vector with the given dimension count.
func New[T Scalar](dims int) (Vec[T], error) {
	if dims < 1 {
		return Vec[T]{}, errors.New("vector dimension count must be at least 1").
			WithType(ErrTypeInvalidDimensions).
			WithTag("dims", dims)
	}
	return Vec[T]{c: make([]T, dims)}, nil
}

// Of returns a vector holding a copy of the given components.
func Of[T Scalar](components ...T) (Vec[T], error) {
	v, err := New[T](len(components))
	if err != nil {
		return Vec[T]{}, err
	}
	copy(v.c, components)
	return v, nil
}

// MustOf is like Of but panics when no component is given.
func MustOf[T Scalar](components ...T) Vec[T] {
	v, err := Of(components...)
	if err != nil {
		panic(err)
	}
	return v
}

// Dims returns the dimension count.
func (v Vec[T]) Dims() int {
	return len(v.c)
}

// Get returns the component at index i.
func (v Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.c) {
		return 0, outOfRange(i, len(v.c))
	}
	return v.c[i], nil
}

// Set replaces the component at index i.
func (v Vec[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.c) {
		return outOfRange(i, len(v.c))
	}
	v.c[i] = value
	return nil
}

// At returns the component at index i. It panics when i is out of range, the
// same way indexing a slice does. Use Get for a checked access.
func (v Vec[T]) At(i int) T {
	return v.c[i]
}

// Components returns a copy of the vector components.
func (v Vec[T]) Components() []T {
	return append([]T(nil), v.c...)
}

// Clone returns a copy of v that shares no storage with it.
func (v Vec[T]) Clone() Vec[T] {
	return Vec[T]{c: v.Components()}
}

// Add returns v with s added to every component.
func (v Vec[T]) Add(s T) Vec[T] {
	r := v.Clone()
	r.AddInPlace(s)
	return r
}

// Sub returns v with s subtracted from every component.
func (v Vec[T]) Sub(s T) Vec[T] {
	r := v.Clone()
	r.SubInPlace(s)
	return r
}

// Mul returns v with every component multiplied by s.
func (v Vec[T]) Mul(s T) Vec[T] {
	r := v.Clone()
	r.MulInPlace(s)
	return r
}

// Div returns v with every component divided by s.
func (v Vec[T]) Div(s T) Vec[T] {
	r := v.Clone()
	r.DivInPlace(s)
	return r
}

// AddInPlace adds s to every component.
func (v Vec[T]) AddInPlace(s T) {
	for i := range v.c {
		v.c[i] += s
	}
}

// SubInPlace subtracts s from every component.
func (v Vec[T]) SubInPlace(s T) {
	for i := range v.c {
		v.c[i] -= s
	}
}

// MulInPlace multiplies every component by s.
func (v Vec[T]) MulInPlace(s T) {
	for i := range v.c {
		v.c[i] *= s
	}
}

// DivInPlace divides every component by s. Integer components are
// truncated.
func (v Vec[T]) DivInPlace(s T) {
	for i := range v.c {
		v.c[i] /= s
	}
}

// AddVec returns the componentwise sum of v and o.
func (v Vec[T]) AddVec(o Vec[T]) (Vec[T], error) {
	if err := v.checkDims(o); err != nil {
		return Vec[T]{}, err
	}
	r := v.Clone()
	for i := range r.c {
		r.c[i] += o.c[i]
	}
	return r, nil
}

// SubVec returns the componentwise difference v - o.
func (v Vec[T]) SubVec(o Vec[T]) (Vec[T], error) {
	if err := v.checkDims(o); err != nil {
		return Vec[T]{}, err
	}
	r := v.Clone()
	for i := range r.c {
		r.c[i] -= o.c[i]
	}
	return r, nil
}

// AddMasked returns v with o[d] added to every component d whose bit is set
// in mask. Bit d of mask selects dimension d.
func (v Vec[T]) AddMasked(o Vec[T], mask uint64) (Vec[T], error) {
	if err := v.checkDims(o); err != nil {
		return Vec[T]{}, err
	}
	r := v.Clone()
	for i := range r.c {
		if mask&(1<<uint(i)) != 0 {
			r.c[i] += o.c[i]
		}
	}
	return r, nil
}

// Distance returns the Euclidean distance between v and o. The sum of squared
// differences is accumulated in T, so integer vectors are subject to
// truncation and overflow.
func (v Vec[T]) Distance(o Vec[T]) (T, error) {
	if err := v.checkDims(o); err != nil {
		return 0, err
	}

	if a, ok := any(v.c).([]float32); ok {
		b := any(o.c).([]float32)
		return T(search.Float32s(a).EuclideanDistance(b)), nil
	}

	var sum T
	for i := range v.c {
		d := v.c[i] - o.c[i]
		sum += d * d
	}
	return T(math.Sqrt(float64(sum))), nil
}

// Equal reports whether v and o have the same components.
func (v Vec[T]) Equal(o Vec[T]) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if v.c[i] != o.c[i] {
			return false
		}
	}
	return true
}

// GreaterThan reports whether every component of v is strictly greater than
// the matching component of o.
func (v Vec[T]) GreaterThan(o Vec[T]) bool {
	return v.all(o, func(a, b T) bool { return a > b })
}

func (v Vec[T]) GreaterOrEqualThan(o Vec[T]) bool {
	return v.all(o, func(a, b T) bool { return a >= b })
}

func (v Vec[T]) LesserThan(o Vec[T]) bool {
	return v.all(o, func(a, b T) bool { return a < b })
}

func (v Vec[T]) LesserOrEqualThan(o Vec[T]) bool {
	return v.all(o, func(a, b T) bool { return a <= b })
}

func (v Vec[T]) all(o Vec[T], cmp func(a, b T) bool) bool {
	if len(v.c) != len(o.c) || len(v.c) == 0 {
		return false
	}
	for i := range v.c {
		if !cmp(v.c[i], o.c[i]) {
			return false
		}
	}
	return true
}

func (v Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range v.c {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c)
	}
	b.WriteByte(')')
	return b.String()
}

// MarshalJSON encodes the vector as a JSON array of its components.
func (v Vec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.c)
}

// UnmarshalJSON decodes a JSON array into the vector. The dimension count
// becomes the array length, which must be at least 1.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var c []T
	if err := json.Unmarshal(data, &c); err != nil {
		return errors.New("decoding vector failed").Wrap(err)
	}

	r, err := Of(c...)
	if err != nil {
		return err
	}
	*v = r
	return nil
}

func (v Vec[T]) checkDims(o Vec[T]) error {
	if len(v.c) != len(o.c) {
		return errors.New("vector dimension counts differ").
			WithType(ErrTypeDimensionMismatch).
			WithTag("dims", len(v.c)).
			WithTag("other_dims", len(o.c))
	}
	return nil
}

package vector

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("returns a zero vector", func(t *testing.T) {
		v, err := New[float64](3)
		require.NoError(t, err)
		require.Equal(t, 3, v.Dims())
		require.Equal(t, []float64{0, 0, 0}, v.Components())
	})

	t.Run("returns an error for zero dimensions", func(t *testing.T) {
		_, err := New[float64](0)
		require.Error(t, err)
		require.Equal(t, ErrTypeInvalidDimensions, errors.Type(err))

		_, err = Of[int]()
		require.True(t, errors.IsType(err, ErrTypeInvalidDimensions))
	})

	t.Run("copies the given components", func(t *testing.T) {
		c := []int{1, 2}
		v, err := Of(c...)
		require.NoError(t, err)

		c[0] = 42
		require.Equal(t, 1, v.At(0))
	})
}

func TestGetSet(t *testing.T) {
	v := MustOf[float32](1, 2, 3)

	t.Run("gets and sets a component", func(t *testing.T) {
		require.NoError(t, v.Set(1, 5))

		c, err := v.Get(1)
		require.NoError(t, err)
		require.Equal(t, float32(5), c)
	})

	t.Run("returns an error for an invalid index", func(t *testing.T) {
		for _, i := range []int{-1, 3, 10} {
			_, err := v.Get(i)
			require.Equal(t, ErrTypeOutOfRange, errors.Type(err))

			err = v.Set(i, 1)
			require.Equal(t, ErrTypeOutOfRange, errors.Type(err))
		}
	})
}

func TestScalarArithmetic(t *testing.T) {
	v := MustOf(2.0, 4.0)

	require.Equal(t, []float64{3, 5}, v.Add(1).Components())
	require.Equal(t, []float64{1, 3}, v.Sub(1).Components())
	require.Equal(t, []float64{4, 8}, v.Mul(2).Components())
	require.Equal(t, []float64{1, 2}, v.Div(2).Components())

	// value forms leave the receiver untouched
	require.Equal(t, []float64{2, 4}, v.Components())

	v.AddInPlace(2)
	require.Equal(t, []float64{4, 6}, v.Components())
	v.SubInPlace(1)
	require.Equal(t, []float64{3, 5}, v.Components())
	v.MulInPlace(2)
	require.Equal(t, []float64{6, 10}, v.Components())
	v.DivInPlace(4)
	require.Equal(t, []float64{1.5, 2.5}, v.Components())
}

func TestIntegerDivisionTruncates(t *testing.T) {
	v := MustOf(5, 7)
	require.Equal(t, []int{2, 3}, v.Div(2).Components())
}

func TestVectorArithmetic(t *testing.T) {
	a := MustOf(1, 2, 3)
	b := MustOf(10, 20, 30)

	sum, err := a.AddVec(b)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33}, sum.Components())

	diff, err := b.SubVec(a)
	require.NoError(t, err)
	require.Equal(t, []int{9, 18, 27}, diff.Components())

	masked, err := a.AddMasked(b, 0b101)
	require.NoError(t, err)
	require.Equal(t, []int{11, 2, 33}, masked.Components())

	_, err = a.AddVec(MustOf(1, 2))
	require.Equal(t, ErrTypeDimensionMismatch, errors.Type(err))
	_, err = a.SubVec(MustOf(1))
	require.Equal(t, ErrTypeDimensionMismatch, errors.Type(err))
	_, err = a.AddMasked(MustOf(1), 1)
	require.Equal(t, ErrTypeDimensionMismatch, errors.Type(err))
}

func TestDistance(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		d, err := MustOf(0.0, 0.0).Distance(MustOf(3.0, 4.0))
		require.NoError(t, err)
		require.Equal(t, 5.0, d)
	})

	t.Run("float32", func(t *testing.T) {
		d, err := MustOf[float32](0, 0).Distance(MustOf[float32](3, 4))
		require.NoError(t, err)
		require.InDelta(t, float32(5), d, 1e-6)
	})

	t.Run("int", func(t *testing.T) {
		d, err := MustOf(1, 1).Distance(MustOf(4, 5))
		require.NoError(t, err)
		require.Equal(t, 5, d)
	})

	t.Run("unsigned", func(t *testing.T) {
		d, err := MustOf[uint32](4, 5).Distance(MustOf[uint32](1, 1))
		require.NoError(t, err)
		require.Equal(t, uint32(5), d)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := MustOf(0.0).Distance(MustOf(3.0, 4.0))
		require.True(t, errors.IsType(err, ErrTypeDimensionMismatch))
	})
}

func TestComparisons(t *testing.T) {
	zero := MustOf(0.0, 0.0)
	one := MustOf(1.0, 1.0)
	mixed := MustOf(0.0, 1.0)

	require.True(t, zero.Equal(MustOf(0.0, 0.0)))
	require.False(t, zero.Equal(MustOf(0.0)))
	require.True(t, one.GreaterThan(zero))
	require.False(t, mixed.GreaterThan(zero))
	require.True(t, mixed.GreaterOrEqualThan(zero))
	require.True(t, zero.LesserThan(one))
	require.False(t, mixed.LesserThan(one))
	require.True(t, mixed.LesserOrEqualThan(one))
	require.False(t, one.GreaterThan(MustOf(0.0)))
}

func TestString(t *testing.T) {
	require.Equal(t, "(1, 2.5, -3)", MustOf(1.0, 2.5, -3.0).String())
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(MustOf(1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]", string(b))

	var v Vec[float64]
	require.NoError(t, json.Unmarshal([]byte("[0.5,4]"), &v))
	require.Equal(t, []float64{0.5, 4}, v.Components())

	err = json.Unmarshal([]byte("[]"), &v)
	require.Error(t, err)
}

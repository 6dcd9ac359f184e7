package field_test

import (
	"testing"

	"github.com/katalvlaran/gaborpatch/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPlane_InvalidDimensions verifies that non-positive shapes
// are rejected with ErrInvalidDimensions.
func TestNewPlane_InvalidDimensions(t *testing.T) {
	_, err := field.NewPlane(0, 3)
	assert.ErrorIs(t, err, field.ErrInvalidDimensions, "zero rows must error")

	_, err = field.NewPlane(3, -1)
	assert.ErrorIs(t, err, field.ErrInvalidDimensions, "negative cols must error")
}

// TestPlane_AtSet verifies round-trips, zero initialization and
// bounds-checked indexing.
func TestPlane_AtSet(t *testing.T) {
	p, err := field.NewPlane(2, 3)
	require.NoError(t, err, "2x3 plane must allocate")
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 3, p.Cols())

	// Fresh planes are zero-filled.
	v, err := p.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "fresh plane must be zero-filled")

	// Write then read back.
	require.NoError(t, p.Set(1, 2, 4.5))
	v, err = p.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v, "Set/At round-trip")

	// Out-of-range indices surface ErrIndexOutOfBounds.
	_, err = p.At(2, 0)
	assert.ErrorIs(t, err, field.ErrIndexOutOfBounds, "row overflow must error")
	_, err = p.At(0, 3)
	assert.ErrorIs(t, err, field.ErrIndexOutOfBounds, "col overflow must error")
	err = p.Set(-1, 0, 1)
	assert.ErrorIs(t, err, field.ErrIndexOutOfBounds, "negative row must error")
}

// TestPlane_Clone ensures clones are deep copies, not aliased views.
func TestPlane_Clone(t *testing.T) {
	p, err := field.NewPlane(2, 2)
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 1, 7))

	q := p.Clone()
	require.NoError(t, q.Set(0, 1, -7))

	v, err := p.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "mutating the clone must not touch the original")
}

// TestLinear verifies the a*X + b*Y + c kernel on a small plane.
func TestLinear(t *testing.T) {
	X, err := field.NewPlane(2, 2)
	require.NoError(t, err)
	Y, err := field.NewPlane(2, 2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.NoError(t, X.Set(i, j, float64(j)))
			require.NoError(t, Y.Set(i, j, float64(i)))
		}
	}

	out, err := field.Linear(2, X, 3, Y, 1)
	require.NoError(t, err, "matching shapes must not error")

	// out[i][j] = 2*j + 3*i + 1
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, e := out.At(i, j)
			require.NoError(t, e)
			assert.Equal(t, 2*float64(j)+3*float64(i)+1, v, "Linear at (%d,%d)", i, j)
		}
	}
}

// TestLinear_ShapeMismatch verifies that differing operand shapes
// surface ErrShapeMismatch, and nil operands ErrNilPlane.
func TestLinear_ShapeMismatch(t *testing.T) {
	X, err := field.NewPlane(2, 2)
	require.NoError(t, err)
	Y, err := field.NewPlane(2, 3)
	require.NoError(t, err)

	_, err = field.Linear(1, X, 1, Y, 0)
	assert.ErrorIs(t, err, field.ErrShapeMismatch, "2x2 vs 2x3 must error")

	_, err = field.Linear(1, nil, 1, Y, 0)
	assert.ErrorIs(t, err, field.ErrNilPlane, "nil operand must error")
}

// TestMap verifies elementwise application of a unary function.
func TestMap(t *testing.T) {
	X, err := field.NewPlane(1, 3)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		require.NoError(t, X.Set(0, j, float64(j)))
	}

	out, err := field.Map(X, func(x float64) float64 { return x * x })
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		v, e := out.At(0, j)
		require.NoError(t, e)
		assert.Equal(t, float64(j*j), v, "Map square at column %d", j)
	}

	_, err = field.Map(nil, func(x float64) float64 { return x })
	assert.ErrorIs(t, err, field.ErrNilPlane, "nil plane must error")
}

// TestMap2AndProduct verifies the binary kernel and its Hadamard wrapper.
func TestMap2AndProduct(t *testing.T) {
	X, err := field.NewPlane(2, 2)
	require.NoError(t, err)
	Y, err := field.NewPlane(2, 2)
	require.NoError(t, err)
	require.NoError(t, X.Set(1, 0, 3))
	require.NoError(t, Y.Set(1, 0, 4))

	sum, err := field.Map2(X, Y, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	v, err := sum.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "Map2 sum")

	prod, err := field.Product(X, Y)
	require.NoError(t, err)
	v, err = prod.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v, "Product")

	bad, err := field.NewPlane(3, 2)
	require.NoError(t, err)
	_, err = field.Product(X, bad)
	assert.ErrorIs(t, err, field.ErrShapeMismatch, "mismatched Product must error")
}

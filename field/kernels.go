// SPDX-License-Identifier: MIT
// Package: field
//
// Purpose:
//   - Provide small elementwise kernels over equally-shaped planes so the
//     higher-level pipeline never duplicates tight index loops.
//   - Keep all loops deterministic and cache-friendly over the flat
//     row-major buffer.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over the backing slice.
//   - No hidden allocations beyond the output Plane; O(r*c) time and space.

package field

// Linear computes out[i,j] = a*X[i,j] + b*Y[i,j] + c.
// Time: O(r*c). Space: O(r*c). Deterministic flat loop.
func Linear(a float64, X *Plane, b float64, Y *Plane, c float64) (*Plane, error) {
	// Validate plane presence.
	if X == nil || Y == nil {
		return nil, ErrNilPlane
	}
	// Operands must agree in shape.
	if !sameShape(X, Y) {
		return nil, ErrShapeMismatch
	}
	// Allocate result plane.
	out, err := NewPlane(X.r, X.c)
	if err != nil {
		return nil, err
	}

	// Single pass over the flat row-major buffers.
	for i := range out.data {
		out.data[i] = a*X.data[i] + b*Y.data[i] + c
	}

	return out, nil
}

// Map computes out[i,j] = fn(X[i,j]).
// Time: O(r*c). Space: O(r*c). Deterministic flat loop.
func Map(X *Plane, fn func(float64) float64) (*Plane, error) {
	// Validate plane presence.
	if X == nil {
		return nil, ErrNilPlane
	}
	// Allocate result plane.
	out, err := NewPlane(X.r, X.c)
	if err != nil {
		return nil, err
	}

	// Single pass over the flat row-major buffer.
	for i := range out.data {
		out.data[i] = fn(X.data[i])
	}

	return out, nil
}

// Map2 computes out[i,j] = fn(X[i,j], Y[i,j]).
// Time: O(r*c). Space: O(r*c). Deterministic flat loop.
func Map2(X, Y *Plane, fn func(x, y float64) float64) (*Plane, error) {
	// Validate plane presence.
	if X == nil || Y == nil {
		return nil, ErrNilPlane
	}
	// Operands must agree in shape.
	if !sameShape(X, Y) {
		return nil, ErrShapeMismatch
	}
	// Allocate result plane.
	out, err := NewPlane(X.r, X.c)
	if err != nil {
		return nil, err
	}

	// Single pass over the flat row-major buffers.
	for i := range out.data {
		out.data[i] = fn(X.data[i], Y.data[i])
	}

	return out, nil
}

// Product computes the Hadamard product out[i,j] = X[i,j] * Y[i,j].
// Time: O(r*c). Space: O(r*c). Deterministic flat loop.
func Product(X, Y *Plane) (*Plane, error) {
	// Delegate to Map2 with a multiply closure; validation happens there.
	return Map2(X, Y, func(x, y float64) float64 { return x * y })
}

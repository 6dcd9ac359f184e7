// SPDX-License-Identifier: MIT

// Package field: Plane is a concrete, row-major implementation of a dense
// 2D float64 container, storing elements in a flat slice for performance
// and cache friendliness.
package field

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested plane dimensions are non-positive.
var ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("field: index out of bounds")

// ErrShapeMismatch indicates kernel operands of differing shapes.
var ErrShapeMismatch = errors.New("field: operand shapes differ")

// ErrNilPlane indicates that a nil *Plane was used.
var ErrNilPlane = errors.New("field: nil plane")

// planeErrorf wraps an underlying error with Plane method context.
func planeErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Plane.%s(%d,%d): %w", method, row, col, err)
}

// Plane is a row-major plane of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Plane struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewPlane creates an r×c Plane initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Plane or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewPlane(rows, cols int) (*Plane, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Plane
	return &Plane{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the plane.
// Complexity: O(1).
func (p *Plane) Rows() int {
	return p.r // return stored row count
}

// Cols returns the number of columns in the plane.
// Complexity: O(1).
func (p *Plane) Cols() int {
	return p.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (p *Plane) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= p.r {
		return 0, planeErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= p.c {
		return 0, planeErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*p.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds (wrapped) when the index is invalid.
// Complexity: O(1).
func (p *Plane) At(row, col int) (float64, error) {
	idx, err := p.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return p.data[idx], nil
}

// Set writes v at (row, col).
// Returns ErrIndexOutOfBounds (wrapped) when the index is invalid.
// Complexity: O(1).
func (p *Plane) Set(row, col int, v float64) error {
	idx, err := p.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	p.data[idx] = v

	return nil
}

// Clone returns a deep copy of the plane.
// Complexity: O(r*c) time and memory.
func (p *Plane) Clone() *Plane {
	out := &Plane{r: p.r, c: p.c, data: make([]float64, len(p.data))}
	copy(out.data, p.data)

	return out
}

// sameShape reports whether two planes have identical dimensions.
// Assumes both are non-nil (callers validate first). Complexity: O(1).
func sameShape(a, b *Plane) bool {
	return a.r == b.r && a.c == b.c
}

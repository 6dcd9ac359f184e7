// SPDX-License-Identifier: MIT

// Package field provides the dense numeric planes the gabor pipeline is
// built from: coordinate grids, gratings and envelopes are all Planes.
//
// What:
//
//   - Plane is a row-major 2D container of float64 values backed by a
//     single flat slice (cache-friendly, one allocation).
//   - Elementwise kernels combine equally-shaped planes without exposing
//     index bookkeeping at call sites: Linear (a·X + b·Y + c), Map and
//     Map2.
//
// Why:
//
//   - Whole-array arithmetic keeps per-pixel formulas readable and
//     preserves the vectorization opportunity of the math they express.
//   - Deterministic i→j loop order guarantees bit-identical results
//     regardless of the surrounding pipeline.
//
// Complexity:
//
//   - NewPlane: O(r×c) time and memory.
//   - At/Set:   O(1).
//   - Kernels:  O(r×c) time, O(r×c) memory for the output plane.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive side.
//   - ErrIndexOutOfBounds:  row or column index outside valid range.
//   - ErrShapeMismatch:     kernel operands differ in shape.
//   - ErrNilPlane:          a nil *Plane was passed to a kernel.
package field

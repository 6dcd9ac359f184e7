// Package wave provides the periodic waveform generators used to draw
// gratings: sine, cosine, square and sawtooth.
//
// What:
//
//   - Form enumerates the four supported waveforms.
//   - Eval evaluates a Form at one argument; Generator returns the
//     underlying func(float64) float64 for elementwise application.
//
// Contract (all four forms):
//
//   - Period 2π in the argument.
//   - Amplitude range exactly [-1, 1].
//   - Agreement at argument 0: cosine and square equal +1; sine and
//     sawtooth equal 0.
//
// Conventions:
//
//   - Square is the 50%-duty-cycle wave synchronized with cosine:
//     +1 on the half-cycle where cosine is non-negative, -1 otherwise.
//   - Sawtooth is the linear -1→+1 ramp 2·(x/2π − ⌊x/2π + ½⌋):
//     0 at argument 0, rising toward +1 and wrapping to -1 at each
//     odd multiple of π.
//
// Errors:
//
//   - ErrUnsupportedForm: the Form value is not one of the four
//     supported waveforms. Surfacing this from a resolved pipeline is a
//     programming contract violation, never a soft fallback.
package wave

package wave

import (
	"errors"
	"math"
)

// ErrUnsupportedForm indicates a Form value outside the supported set.
var ErrUnsupportedForm = errors.New("wave: unsupported waveform")

// Form selects a periodic waveform.
//
//   - Sine     — sin(x); 0 at x=0.
//   - Cosine   — cos(x); +1 at x=0.
//   - Square   — ±1 following the sign of the equivalent cosine
//     (non-negative cosine ⇒ +1); +1 at x=0.
//   - Sawtooth — linear -1→+1 ramp with period 2π; 0 at x=0.
type Form int

const (
	// Sine is the sin(x) waveform.
	Sine Form = iota
	// Cosine is the cos(x) waveform.
	Cosine
	// Square is the 50%-duty-cycle ±1 waveform synchronized with cosine.
	Square
	// Sawtooth is the -1→+1 linear ramp with period 2π.
	Sawtooth
)

// twoPi is the common waveform period.
const twoPi = 2 * math.Pi

// String returns the canonical lowercase name of the waveform.
// Unsupported values render as "unsupported".
func (f Form) String() string {
	switch f {
	case Sine:
		return "sine"
	case Cosine:
		return "cosine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unsupported"
	}
}

// Valid reports whether f is one of the four supported waveforms.
// Complexity: O(1).
func (f Form) Valid() bool {
	return f >= Sine && f <= Sawtooth
}

// sine evaluates the sine waveform at x.
func sine(x float64) float64 {
	return math.Sin(x)
}

// cosine evaluates the cosine waveform at x.
func cosine(x float64) float64 {
	return math.Cos(x)
}

// square evaluates the cosine-synchronized square waveform at x:
// +1 on the half-cycle where cos(x) ≥ 0, -1 otherwise.
func square(x float64) float64 {
	if math.Cos(x) >= 0 {
		return 1
	}

	return -1
}

// sawtooth evaluates the -1→+1 linear ramp at x:
// 2·(x/2π − ⌊x/2π + ½⌋). Zero at x=0, discontinuous at odd multiples of π.
func sawtooth(x float64) float64 {
	t := x / twoPi

	return 2 * (t - math.Floor(t+0.5))
}

// Generator returns the evaluation function for f, for elementwise
// application over a plane of arguments (dispatch once, not per pixel).
// Returns ErrUnsupportedForm for values outside the supported set.
// Complexity: O(1).
func Generator(f Form) (func(float64) float64, error) {
	switch f {
	case Sine:
		return sine, nil
	case Cosine:
		return cosine, nil
	case Square:
		return square, nil
	case Sawtooth:
		return sawtooth, nil
	default:
		return nil, ErrUnsupportedForm
	}
}

// Eval evaluates waveform f at a single argument x.
// Returns ErrUnsupportedForm for values outside the supported set.
// Complexity: O(1).
func Eval(f Form, x float64) (float64, error) {
	gen, err := Generator(f)
	if err != nil {
		return 0, err
	}

	return gen(x), nil
}

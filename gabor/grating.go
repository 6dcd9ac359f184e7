package gabor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaborpatch/field"
	"github.com/katalvlaran/gaborpatch/wave"
)

// synthGrating evaluates the oriented, phase-shifted periodic waveform
// over the coordinate grid.
//
// Algorithm:
//  1. θ = rotation in radians (public surface stays in degrees).
//  2. k = 2π / frequency — spatial angular frequency, radians per pixel.
//  3. Projection coefficients a = cos(θ)·k, b = sin(θ)·k, so at rotation
//     0 the argument varies along X only (vertical bars, the reference
//     orientation).
//  4. φ = phase·2π — fractional-cycle offset in radians.
//  5. argument[i,j] = a·X + b·Y + φ, then the waveform elementwise.
//
// The waveform generator is dispatched once before the elementwise pass;
// an unsupported form here means resolve was bypassed and is surfaced as
// a wrapped wave.ErrUnsupportedForm.
// Complexity: O(side²) time and memory.
func synthGrating(p params, X, Y *field.Plane) (*field.Plane, error) {
	theta := p.rotation * math.Pi / 180
	k := 2 * math.Pi / p.frequency
	a := math.Cos(theta) * k
	b := math.Sin(theta) * k
	phi := p.phase * 2 * math.Pi

	argument, err := field.Linear(a, X, b, Y, phi)
	if err != nil {
		return nil, fmt.Errorf("grating argument: %w", err)
	}

	gen, err := wave.Generator(p.form)
	if err != nil {
		return nil, fmt.Errorf("grating dispatch: %w", err)
	}

	return field.Map(argument, gen)
}

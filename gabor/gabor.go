package gabor

import "fmt"

// Generate — Gabor patch synthesis.
//
// Description:
//
//	Generate renders a single static Gabor patch: a periodic grating
//	(sine, cosine, square or sawtooth) windowed by a Gaussian envelope
//	and composited between a background and a foreground colour. The
//	call is pure and stateless; animation is the caller's loop over a
//	varying phase.
//
// Pipeline:
//  1. resolve        — arity check, defaults, permissive corrections.
//  2. buildGrid      — X/Y integer offsets over [-⌊n/2⌋, +⌊n/2⌋].
//  3. synthGrating   — oriented, phase-shifted waveform over the grid.
//  4. synthEnvelope  — circular or elliptical Gaussian window.
//  5. composite      — per-channel uniform/bipolar colour blend.
//
// Grating and envelope are computed independently from the same grid;
// data flows strictly forward and every stage is a pure elementwise map.
//
// Output:
//
//	A side×side×3 Patch with side = 2⌊patchSize/2⌋+1 (always odd; an
//	even patchSize gains one row/column). Values are unclamped.
//
// Errors:
//   - ErrInvalidArgumentCount — patchSize < 1 or more than 11 options.
//   - wave.ErrUnsupportedForm (wrapped) — waveform dispatch failed after
//     resolution; a programming contract violation, never a soft path.
//
// Complexity: O(side²) time and memory.
func Generate(patchSize int, opts ...Option) (*Patch, error) {
	p, err := resolve(patchSize, opts)
	if err != nil {
		return nil, err
	}

	X, Y := buildGrid(p.size)

	grating, err := synthGrating(p, X, Y)
	if err != nil {
		return nil, fmt.Errorf("gabor: %w", err)
	}

	envelope, err := synthEnvelope(p, X, Y)
	if err != nil {
		return nil, fmt.Errorf("gabor: %w", err)
	}

	return composite(p, grating, envelope)
}

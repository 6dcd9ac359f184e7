// Package gabor: functional configuration for Generate. This file defines:
//   - Option (functional options over the internal params state),
//   - WithX constructors for every optional parameter,
//   - defaultParams + resolve, which enforce the permissive correction
//     policy.
//
// Design goals:
//   - Absent vs provided is explicit: an Option not passed leaves its
//     field at the documented default; there is no numeric sentinel a
//     caller could collide with.
//   - Permissive by contract: a provided value outside its valid domain
//     is silently replaced by the default, field by field. Options never
//     panic and never return errors — the only hard failure at this
//     stage is the arity contract (ErrInvalidArgumentCount).
//   - Deterministic: no global state; resolve reads nothing but its
//     arguments.

package gabor

import "github.com/katalvlaran/gaborpatch/wave"

// maxOptions is the number of optional parameters Generate accepts.
// Passing more setters than that exceeds the supported arity.
const maxOptions = 11

// params is the fully resolved, immutable parameter set one Generate
// call operates on. All angles are degrees here; pipeline stages convert
// to radians internally.
type params struct {
	size       int       // patch size as requested, ≥ 1
	frequency  float64   // pixels per cycle, > 0
	rotation   float64   // grating rotation, degrees clockwise from vertical
	form       wave.Form // waveform of the grating
	sigma      float64   // Gaussian sigma, pixels, > 0
	aspect     float64   // envelope aspect ratio, > 0; 1 ⇒ circular
	filterRot  float64   // envelope rotation, degrees; elliptical branch only
	foreColour RGB       // colour the grating modulates toward
	backColour RGB       // colour the patch rests on
	contrast   float64   // modulation amplitude in [0,1]
	style      Style     // Uniform or Bipolar compositing
	phase      float64   // grating offset in cycles, ≥ 0
}

// Option mutates the parameter set under construction. Options are
// applied in call order; the last write to a field wins.
type Option func(*params)

// WithGratingFrequency sets the grating wavelength in pixels per cycle.
// Values ≤ 0 (or NaN) are corrected to patchSize/10.
func WithGratingFrequency(pxPerCycle float64) Option {
	return func(p *params) { p.frequency = pxPerCycle }
}

// WithGratingRotation sets the grating orientation in degrees clockwise
// from vertical. Any real value is accepted.
func WithGratingRotation(degrees float64) Option {
	return func(p *params) { p.rotation = degrees }
}

// WithGratingType selects the waveform. Unsupported forms are corrected
// to wave.Cosine.
func WithGratingType(f wave.Form) Option {
	return func(p *params) { p.form = f }
}

// WithFilterSigma sets the Gaussian envelope sigma in pixels.
// Values ≤ 0 (or NaN) are corrected to patchSize/10.
func WithFilterSigma(px float64) Option {
	return func(p *params) { p.sigma = px }
}

// WithFilterAspect sets the envelope aspect ratio; 1 keeps the envelope
// circular. Values ≤ 0 (or NaN) are corrected to 1.
func WithFilterAspect(ratio float64) Option {
	return func(p *params) { p.aspect = ratio }
}

// WithFilterRotation sets the envelope orientation in degrees. It only
// affects output when the aspect ratio is not 1.
func WithFilterRotation(degrees float64) Option {
	return func(p *params) { p.filterRot = degrees }
}

// WithForeColour sets the colour the grating modulates toward.
// Components are unconstrained reals.
func WithForeColour(c RGB) Option {
	return func(p *params) { p.foreColour = c }
}

// WithBackColour sets the colour the patch rests on.
// Components are unconstrained reals.
func WithBackColour(c RGB) Option {
	return func(p *params) { p.backColour = c }
}

// WithContrast sets the modulation amplitude. Values outside [0,1]
// (or NaN) are corrected to 1.
func WithContrast(k float64) Option {
	return func(p *params) { p.contrast = k }
}

// WithStyle selects Uniform or Bipolar compositing. Unsupported values
// are corrected to Uniform.
func WithStyle(s Style) Option {
	return func(p *params) { p.style = s }
}

// WithPhase sets the grating offset in cycles (0.25 = quarter cycle).
// Negative values (or NaN) are corrected to 0; no upper bound applies.
func WithPhase(cycles float64) Option {
	return func(p *params) { p.phase = cycles }
}

// defaultParams returns the documented defaults for the given size.
// The two size-dependent defaults (frequency, sigma) are patchSize/10.
func defaultParams(patchSize int) params {
	derived := float64(patchSize) / sizeDivisor

	return params{
		size:       patchSize,
		frequency:  derived,
		rotation:   DefaultGratingRotation,
		form:       DefaultGratingType,
		sigma:      derived,
		aspect:     DefaultFilterAspect,
		filterRot:  DefaultFilterRotation,
		foreColour: DefaultForeColour,
		backColour: DefaultBackColour,
		contrast:   DefaultContrast,
		style:      DefaultStyle,
		phase:      DefaultPhase,
	}
}

// resolve produces the immutable parameter set for one Generate call.
// Stage 1 (Arity): patchSize is required and at most maxOptions setters
// are accepted — the only hard failure here.
// Stage 2 (Apply): start from defaults, apply options in order.
// Stage 3 (Correct): replace every out-of-domain value with its default,
// independently per field. Comparisons are written negatively so NaN
// falls into the corrected branch as well.
// Complexity: O(len(opts)).
func resolve(patchSize int, opts []Option) (params, error) {
	// Arity contract: required argument present, option count in range.
	if patchSize < 1 || len(opts) > maxOptions {
		return params{}, ErrInvalidArgumentCount
	}

	// Apply caller options over the documented defaults.
	p := defaultParams(patchSize)
	for _, opt := range opts {
		opt(&p)
	}

	// Per-field permissive corrections; order mirrors the field order
	// and each rule is independent of the others.
	d := defaultParams(patchSize)
	if !(p.frequency > 0) {
		p.frequency = d.frequency
	}
	if !p.form.Valid() {
		p.form = d.form
	}
	if !(p.sigma > 0) {
		p.sigma = d.sigma
	}
	if !(p.aspect > 0) {
		p.aspect = d.aspect
	}
	if !(p.contrast >= 0 && p.contrast <= 1) {
		p.contrast = d.contrast
	}
	if !p.style.Valid() {
		p.style = d.style
	}
	if !(p.phase >= 0) {
		p.phase = d.phase
	}

	return p, nil
}

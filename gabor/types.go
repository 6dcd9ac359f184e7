// Package gabor defines the public value types and documented defaults
// for Gabor patch generation.
package gabor

import "github.com/katalvlaran/gaborpatch/wave"

// RGB is a red, green, blue colour triple. Components are free reals:
// the pipeline never clamps them to [0,1], and out-of-range inputs are
// legal (they simply shift the compositing range).
type RGB [3]float64

// Style selects how the grating modulates colour between the background
// and foreground colours.
type Style int

const (
	// Uniform modulates from the background toward the foreground only:
	// the grating is remapped to [0,1] before weighting.
	Uniform Style = iota
	// Bipolar modulates symmetrically around the background, toward and
	// away from the foreground.
	Bipolar
)

// String returns the canonical lowercase name of the style.
func (s Style) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Bipolar:
		return "bipolar"
	default:
		return "unsupported"
	}
}

// Valid reports whether s is a supported compositing style.
func (s Style) Valid() bool {
	return s == Uniform || s == Bipolar
}

// DEFAULTS - single source of truth for unset/corrected parameters.
// Frequency and sigma defaults derive from the patch size and live in
// options.go (defaultParams); everything size-independent is here.
const (
	// DefaultGratingRotation is the grating orientation in degrees
	// clockwise from vertical.
	DefaultGratingRotation = 0.0

	// DefaultGratingType is the waveform used when none (or an
	// unsupported one) is requested.
	DefaultGratingType = wave.Cosine

	// DefaultFilterAspect of 1 selects the circular envelope branch.
	DefaultFilterAspect = 1.0

	// DefaultFilterRotation is the envelope orientation in degrees;
	// only consulted on the elliptical branch.
	DefaultFilterRotation = 0.0

	// DefaultContrast scales the colour modulation amplitude.
	DefaultContrast = 1.0

	// DefaultStyle composites from the background toward the foreground.
	DefaultStyle = Uniform

	// DefaultPhase is the grating offset in cycles (0.25 = quarter cycle).
	DefaultPhase = 0.0

	// sizeDivisor derives the size-dependent defaults: both the grating
	// frequency and the filter sigma default to patchSize/sizeDivisor.
	sizeDivisor = 10.0
)

// Size-independent colour defaults.
var (
	// DefaultForeColour is white.
	DefaultForeColour = RGB{1, 1, 1}

	// DefaultBackColour is mid-gray.
	DefaultBackColour = RGB{0.5, 0.5, 0.5}
)

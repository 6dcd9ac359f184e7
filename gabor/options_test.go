package gabor

import (
	"math"
	"testing"

	"github.com/katalvlaran/gaborpatch/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_Defaults verifies the fully-defaulted parameter set,
// including the size-derived frequency and sigma.
func TestResolve_Defaults(t *testing.T) {
	p, err := resolve(20, nil)
	require.NoError(t, err)

	assert.Equal(t, 20, p.size)
	assert.Equal(t, 2.0, p.frequency, "default frequency is patchSize/10")
	assert.Equal(t, 2.0, p.sigma, "default sigma is patchSize/10")
	assert.Equal(t, DefaultGratingRotation, p.rotation)
	assert.Equal(t, wave.Cosine, p.form)
	assert.Equal(t, DefaultFilterAspect, p.aspect)
	assert.Equal(t, DefaultFilterRotation, p.filterRot)
	assert.Equal(t, DefaultForeColour, p.foreColour)
	assert.Equal(t, DefaultBackColour, p.backColour)
	assert.Equal(t, DefaultContrast, p.contrast)
	assert.Equal(t, Uniform, p.style)
	assert.Equal(t, DefaultPhase, p.phase)
}

// TestResolve_CorrectionRules exercises every per-field correction
// independently: out-of-domain values are replaced, never rejected.
func TestResolve_CorrectionRules(t *testing.T) {
	p, err := resolve(20,
		[]Option{
			WithGratingFrequency(-1),
			WithGratingType(wave.Form(9)),
			WithFilterSigma(math.NaN()),
			WithFilterAspect(-0.5),
			WithContrast(2),
			WithStyle(Style(9)),
			WithPhase(-0.25),
		})
	require.NoError(t, err, "corrections must not surface errors")

	assert.Equal(t, 2.0, p.frequency, "frequency ≤ 0 → patchSize/10")
	assert.Equal(t, wave.Cosine, p.form, "unsupported form → cosine")
	assert.Equal(t, 2.0, p.sigma, "NaN sigma → patchSize/10")
	assert.Equal(t, 1.0, p.aspect, "aspect ≤ 0 → 1")
	assert.Equal(t, 1.0, p.contrast, "contrast outside [0,1] → 1")
	assert.Equal(t, Uniform, p.style, "unsupported style → uniform")
	assert.Equal(t, 0.0, p.phase, "negative phase → 0")
}

// TestResolve_DistinguishesAbsentFromZero pins the option mechanism:
// an explicit in-domain zero survives, while absence means the default.
func TestResolve_DistinguishesAbsentFromZero(t *testing.T) {
	absent, err := resolve(10, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, absent.contrast, "absent contrast defaults to 1")

	zero, err := resolve(10, []Option{WithContrast(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.contrast, "explicit zero contrast is in-domain and kept")
}

// TestResolve_ValidValuesKept ensures legitimate values pass through
// untouched, including ones with no domain restriction.
func TestResolve_ValidValuesKept(t *testing.T) {
	p, err := resolve(10, []Option{
		WithGratingFrequency(0.5),
		WithGratingRotation(-45),
		WithGratingType(wave.Sawtooth),
		WithFilterSigma(7),
		WithFilterAspect(0.25),
		WithFilterRotation(720),
		WithForeColour(RGB{2, -1, 0.5}), // components are unconstrained
		WithContrast(0.3),
		WithStyle(Bipolar),
		WithPhase(9.75), // no upper bound on phase
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, p.frequency)
	assert.Equal(t, -45.0, p.rotation)
	assert.Equal(t, wave.Sawtooth, p.form)
	assert.Equal(t, 7.0, p.sigma)
	assert.Equal(t, 0.25, p.aspect)
	assert.Equal(t, 720.0, p.filterRot)
	assert.Equal(t, RGB{2, -1, 0.5}, p.foreColour)
	assert.Equal(t, 0.3, p.contrast)
	assert.Equal(t, Bipolar, p.style)
	assert.Equal(t, 9.75, p.phase)
}

// TestResolve_Arity verifies the hard arity failures.
func TestResolve_Arity(t *testing.T) {
	_, err := resolve(0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgumentCount, "patchSize < 1 must error")

	opts := make([]Option, maxOptions+1)
	for i := range opts {
		opts[i] = WithPhase(0)
	}
	_, err = resolve(5, opts)
	assert.ErrorIs(t, err, ErrInvalidArgumentCount, "more than maxOptions must error")

	_, err = resolve(5, opts[:maxOptions])
	assert.NoError(t, err, "exactly maxOptions is in range")
}

// TestBuildGrid verifies the symmetric integer grid and the odd-side
// invariant for both parities.
func TestBuildGrid(t *testing.T) {
	X, Y := buildGrid(4) // even size ⇒ side 5

	require.Equal(t, 5, X.Rows())
	require.Equal(t, 5, X.Cols())
	require.Equal(t, 5, Y.Rows())

	corner, err := X.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -2.0, corner, "top-left X offset")

	center, err := X.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, center, "center X offset")

	yBottom, err := Y.At(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, yBottom, "bottom Y offset")

	yTopRight, err := Y.At(0, 4)
	require.NoError(t, err)
	assert.Equal(t, -2.0, yTopRight, "Y varies along rows only")

	// Odd size keeps the requested side.
	X, _ = buildGrid(5)
	assert.Equal(t, 5, X.Rows(), "odd patchSize keeps its side")

	// Degenerate single pixel.
	X, Y = buildGrid(1)
	assert.Equal(t, 1, X.Rows())
	v, err := Y.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "single-pixel grid sits at the origin")
}

// TestStyle_StringAndValid covers the style helpers.
func TestStyle_StringAndValid(t *testing.T) {
	assert.Equal(t, "uniform", Uniform.String())
	assert.Equal(t, "bipolar", Bipolar.String())
	assert.Equal(t, "unsupported", Style(7).String())

	assert.True(t, Uniform.Valid())
	assert.True(t, Bipolar.Valid())
	assert.False(t, Style(7).Valid())
}

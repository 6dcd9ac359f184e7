// Package gabor renders Gabor patches: a periodic grating (sine, cosine,
// square or sawtooth) windowed by a Gaussian envelope and composited into
// a three-channel colour patch.
//
// 🚀 What is a Gabor patch?
//
//	The classic vision-science stimulus: multiply an oriented grating by
//	a localized Gaussian window, then blend a foreground colour against a
//	background colour with the result. Generate runs that pipeline in
//	five pure stages:
//	  1. Resolve  — apply defaults and the permissive correction policy
//	  2. Grid     — symmetric integer coordinates centered on the middle pixel
//	  3. Grating  — oriented, phase-shifted waveform over the grid
//	  4. Envelope — circular or elliptical (rotated) Gaussian window
//	  5. Composite — per-channel uniform or bipolar colour blend
//
// ✨ Key behaviors:
//
//   - Permissive corrections: every optional parameter outside its valid
//     domain is silently replaced by its documented default — Generate
//     never fails because of a malformed option value.
//   - Odd output side: the grid spans [-⌊n/2⌋, +⌊n/2⌋], so the patch is
//     always (2⌊n/2⌋+1)² pixels; an even patchSize gains one row/column.
//   - Unclamped output: compositing can leave [0,1] when the background
//     is not midway toward the foreground. That is documented behavior;
//     clamp downstream via Patch.Clamped or Patch.ToRGBA.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gaborpatch/gabor"
//
//	patch, err := gabor.Generate(64,
//	    gabor.WithGratingFrequency(8),    // pixels per cycle
//	    gabor.WithGratingRotation(45),    // degrees clockwise from vertical
//	    gabor.WithGratingType(wave.Sine),
//	    gabor.WithFilterSigma(12),
//	    gabor.WithStyle(gabor.Bipolar),
//	)
//
// Orientation convention: rotation 0 places the bars vertically — the
// grating varies along X. Angles are degrees on the public surface;
// radians are used uniformly inside.
//
// Errors (hard failures only):
//
//   - ErrInvalidArgumentCount: patchSize < 1 or more option setters than
//     there are optional parameters.
//   - wave.ErrUnsupportedForm (wrapped): a waveform reached dispatch
//     without surviving resolution — a programming contract violation.
//
// Performance: O(n²) time and memory in the grid side n; fully
// deterministic, stateless and re-entrant.
package gabor

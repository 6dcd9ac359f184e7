// Package gaborpatch synthesizes Gabor patches — periodic gratings
// windowed by a Gaussian envelope — as plain numeric arrays, ready for
// vision-science stimulus pipelines.
//
// 🚀 What is gaborpatch?
//
//	A small, deterministic library that renders a single static patch:
//		• Gratings: sine, cosine, square or sawtooth waves at any
//		  orientation, frequency and phase
//		• Envelopes: circular or elliptical (rotated) Gaussian windows
//		• Compositing: uniform or bipolar colour modulation between a
//		  foreground and a background colour, per RGB channel
//		• Output: an unclamped H×W×3 float64 patch (odd side length,
//		  centered on the middle pixel)
//
// ✨ Why choose gaborpatch?
//
//   - Permissive by contract – out-of-domain options are silently
//     replaced by documented defaults; any positive patch size produces
//     a patch
//   - Deterministic – no global state, no randomness, bit-identical
//     results for identical inputs
//   - Pure Go – no cgo, no hidden deps
//   - Composable – the wave and field subpackages are usable on their own
//
// Everything is organized under three subpackages:
//
//	field/ — dense row-major float64 planes + elementwise kernels
//	wave/  — the four periodic waveform generators and dispatch
//	gabor/ — options, pipeline stages and the Generate entry point
//
// Quick start:
//
//	patch, err := gabor.Generate(64,
//	    gabor.WithGratingFrequency(8),
//	    gabor.WithGratingRotation(45),
//	    gabor.WithStyle(gabor.Bipolar),
//	)
//
// Callers producing animated gratings call Generate repeatedly with a
// varying phase; callers needing display-safe values clamp downstream
// (see Patch.Clamped and Patch.ToRGBA).
//
//	go get github.com/katalvlaran/gaborpatch/gabor
package gaborpatch

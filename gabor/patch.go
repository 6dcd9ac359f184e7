package gabor

import (
	"fmt"
	"image"
	"image/color"
)

// channels is the number of colour components per pixel.
const channels = 3

// patchErrorf wraps an underlying error with Patch method context.
func patchErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Patch.%s(%d,%d): %w", method, row, col, err)
}

// Patch is a square three-channel float64 image, row-major with
// interleaved RGB components. Values are unclamped by contract.
type Patch struct {
	side int       // rows == cols == side
	data []float64 // flat backing storage, length == side*side*channels
}

// NewPatch creates a zero-filled side×side×3 patch.
// Returns ErrInvalidPatchSide when side < 1. Generate always derives an
// odd side ≥ 1 from a validated patchSize, so it never hits this path;
// the guard protects direct callers.
// Complexity: O(side²) time and memory.
func NewPatch(side int) (*Patch, error) {
	if side < 1 {
		return nil, ErrInvalidPatchSide
	}

	return &Patch{side: side, data: make([]float64, side*side*channels)}, nil
}

// Side returns the side length in pixels.
// Complexity: O(1).
func (p *Patch) Side() int {
	return p.side
}

// indexOf computes the flat index of the first channel at (row, col),
// or an ErrIndexOutOfBounds-wrapped failure.
// Complexity: O(1).
func (p *Patch) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= p.side {
		return 0, patchErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= p.side {
		return 0, patchErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return (row*p.side + col) * channels, nil
}

// At returns the RGB triple at (row, col).
// Complexity: O(1).
func (p *Patch) At(row, col int) (RGB, error) {
	idx, err := p.indexOf("At", row, col)
	if err != nil {
		return RGB{}, err
	}

	return RGB{p.data[idx], p.data[idx+1], p.data[idx+2]}, nil
}

// Channel returns one colour component (0=R, 1=G, 2=B) at (row, col).
// Complexity: O(1).
func (p *Patch) Channel(row, col, ch int) (float64, error) {
	if ch < 0 || ch >= channels {
		return 0, patchErrorf("Channel", row, col, ErrIndexOutOfBounds)
	}
	idx, err := p.indexOf("Channel", row, col)
	if err != nil {
		return 0, err
	}

	return p.data[idx+ch], nil
}

// Set writes the RGB triple at (row, col).
// Complexity: O(1).
func (p *Patch) Set(row, col int, c RGB) error {
	idx, err := p.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	p.data[idx], p.data[idx+1], p.data[idx+2] = c[0], c[1], c[2]

	return nil
}

// clamp01 limits v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// Clamped returns a deep copy with every component limited to [0,1].
// The pipeline itself never clamps; this is the documented helper for
// callers that need display-safe values.
// Complexity: O(side²) time and memory.
func (p *Patch) Clamped() *Patch {
	out := &Patch{side: p.side, data: make([]float64, len(p.data))}
	for i, v := range p.data {
		out.data[i] = clamp01(v)
	}

	return out
}

// ToRGBA converts the patch to an 8-bit stdlib image, clamping each
// component to [0,1] and scaling to [0,255] with rounding. Alpha is
// fully opaque. Encoding or saving the image is the caller's business;
// this library does no file I/O.
// Complexity: O(side²) time and memory.
func (p *Patch) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.side, p.side))
	for i := 0; i < p.side; i++ {
		for j := 0; j < p.side; j++ {
			idx := (i*p.side + j) * channels
			img.SetRGBA(j, i, color.RGBA{
				R: uint8(clamp01(p.data[idx])*255 + 0.5),
				G: uint8(clamp01(p.data[idx+1])*255 + 0.5),
				B: uint8(clamp01(p.data[idx+2])*255 + 0.5),
				A: 0xff,
			})
		}
	}

	return img
}

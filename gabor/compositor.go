package gabor

import "github.com/katalvlaran/gaborpatch/field"

// composite blends the resolved colours per channel using grating ×
// envelope, contrast and the compositing style. No clamping is applied:
// when the background is not the midpoint toward the foreground the
// result may leave [0,1], which is documented behavior.
//
// Per channel c:
//
//	Bipolar: back[c] + (fore[c]-back[c]) · contrast · grating · envelope
//	         — spans symmetrically around the background, toward and away
//	         from the foreground (grating ∈ [-1,1]).
//	Uniform: back[c] + (fore[c]-back[c]) · contrast · (0.5+0.5·grating) · envelope
//	         — (0.5+0.5·grating) ∈ [0,1], so the result spans only from
//	         the background toward the foreground, never past it.
//
// Complexity: O(side²) time and memory.
func composite(p params, grating, envelope *field.Plane) (*Patch, error) {
	side := grating.Rows()
	patch, err := NewPatch(side)
	if err != nil {
		return nil, err
	}

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			g, err := grating.At(i, j)
			if err != nil {
				return nil, err
			}
			e, err := envelope.At(i, j)
			if err != nil {
				return nil, err
			}

			// Shared per-pixel modulation weight.
			var mod float64
			if p.style == Bipolar {
				mod = p.contrast * g * e
			} else {
				mod = p.contrast * (0.5 + 0.5*g) * e
			}

			var c RGB
			for ch := 0; ch < channels; ch++ {
				c[ch] = p.backColour[ch] + (p.foreColour[ch]-p.backColour[ch])*mod
			}
			if err = patch.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}

	return patch, nil
}

package gabor

import (
	"math"

	"github.com/katalvlaran/gaborpatch/field"
)

// synthEnvelope evaluates the Gaussian window over the coordinate grid.
// Values lie in (0, 1] and the center pixel (X=Y=0) is exactly 1 on both
// branches.
//
// Circular branch (aspect == 1): the separable product of two identical
// 1D Gaussians — the standard isotropic 2D Gaussian. The envelope
// rotation is irrelevant by symmetry and is ignored.
//
// Elliptical branch (aspect != 1): the rotated anisotropic Gaussian with
// σx = sigma, σy = sigma·aspect and θ = -filterRot (negated so the
// envelope rotates in the same visual direction as the grating):
//
//	a = cos²θ/(2σx²) + sin²θ/(2σy²)
//	b = -sin(2θ)/(4σx²) + sin(2θ)/(4σy²)
//	c = sin²θ/(2σx²) + cos²θ/(2σy²)
//	envelope = exp(-(a·X² + 2b·X·Y + c·Y²))
//
// Radians are used uniformly internally; degrees exist only on the
// public surface.
// Complexity: O(side²) time and memory.
func synthEnvelope(p params, X, Y *field.Plane) (*field.Plane, error) {
	if p.aspect == 1 {
		twoSigmaSq := 2 * p.sigma * p.sigma

		return field.Map2(X, Y, func(x, y float64) float64 {
			return math.Exp(-y*y/twoSigmaSq) * math.Exp(-x*x/twoSigmaSq)
		})
	}

	sigmaX := p.sigma
	sigmaY := p.sigma * p.aspect
	theta := -p.filterRot * math.Pi / 180

	sinT, cosT := math.Sincos(theta)
	sin2T := math.Sin(2 * theta)
	a := cosT*cosT/(2*sigmaX*sigmaX) + sinT*sinT/(2*sigmaY*sigmaY)
	b := -sin2T/(4*sigmaX*sigmaX) + sin2T/(4*sigmaY*sigmaY)
	c := sinT*sinT/(2*sigmaX*sigmaX) + cosT*cosT/(2*sigmaY*sigmaY)

	return field.Map2(X, Y, func(x, y float64) float64 {
		return math.Exp(-(a*x*x + 2*b*x*y + c*y*y))
	})
}

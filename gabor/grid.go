package gabor

import "github.com/katalvlaran/gaborpatch/field"

// buildGrid constructs the symmetric coordinate grid for a patch:
// two equally-shaped planes X and Y of integer offsets from the center
// pixel, each spanning [-⌊patchSize/2⌋, +⌊patchSize/2⌋].
//
// The side length is always 2⌊patchSize/2⌋+1 (odd); an even patchSize
// therefore yields one extra row and column versus the requested size.
//
// X[i][j] = j - halfSpan (varies along columns),
// Y[i][j] = i - halfSpan (varies along rows).
//
// Purely deterministic; patchSize ≥ 1 is guaranteed by resolve, so the
// plane allocations cannot fail.
// Complexity: O(side²) time and memory.
func buildGrid(patchSize int) (X, Y *field.Plane) {
	halfSpan := patchSize / 2
	side := 2*halfSpan + 1

	X, _ = field.NewPlane(side, side)
	Y, _ = field.NewPlane(side, side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			_ = X.Set(i, j, float64(j-halfSpan)) // bounds-safe by construction
			_ = Y.Set(i, j, float64(i-halfSpan))
		}
	}

	return X, Y
}

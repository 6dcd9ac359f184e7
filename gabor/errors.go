// Package gabor: sentinel error set.
// All hard failures returned by this package are declared here and must be
// matched with errors.Is. Soft parameter corrections never surface errors;
// see options.go for the permissive correction policy.

package gabor

import "errors"

// ErrInvalidArgumentCount indicates a call outside the supported arity:
// the required patchSize is absent (non-positive) or more option setters
// were passed than there are optional parameters.
var ErrInvalidArgumentCount = errors.New("gabor: invalid argument count")

// ErrInvalidPatchSide indicates a direct NewPatch call with a
// non-positive side length.
var ErrInvalidPatchSide = errors.New("gabor: patch side must be > 0")

// ErrIndexOutOfBounds indicates a pixel or channel index outside the
// patch bounds.
var ErrIndexOutOfBounds = errors.New("gabor: index out of bounds")

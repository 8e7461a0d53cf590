package secular

import "errors"

// Domain errors for model construction.
var (
	// ErrTooFewBodies indicates fewer than two bodies; no secular
	// coupling is definable.
	ErrTooFewBodies = errors.New("secular: at least two bodies required")

	// ErrDuplicateAxis indicates two bodies share a semi-major axis,
	// making the coupling integral singular.
	ErrDuplicateAxis = errors.New("secular: coincident semi-major axes (coupling singular)")

	// ErrInvalidBody indicates a non-positive mass or semi-major axis.
	ErrInvalidBody = errors.New("secular: body mass and semi-major axis must be positive")

	// ErrEigenFailed indicates the eigendecomposition did not converge
	// or the amplitude fit hit a singular eigenvector basis.
	ErrEigenFailed = errors.New("secular: eigendecomposition failed")

	// ErrNotFinite indicates NaN or Inf appeared in the decomposition.
	ErrNotFinite = errors.New("secular: non-finite value in decomposition")
)

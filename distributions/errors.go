package distributions

import "errors"

// Sentinel errors. Construction-time failures are NumericErrors (§7);
// InverseCDF's own failures are DomainErrors (§7). Both are plain
// sentinels here — the engine package wraps them with field context where
// it has it (e.g. which activity).
var (
	// ErrInvalidUniform indicates a > b was passed to NewUniform, or
	// min > max to NewTruncatedNormal.
	ErrInvalidUniform = errors.New("distributions: uniform requires a <= b")

	// ErrInvalidTriangular indicates a <= c <= b and a < b does not hold.
	ErrInvalidTriangular = errors.New("distributions: triangular requires a <= c <= b and a < b")

	// ErrInvalidNormal indicates sigma < 0 was passed to NewNormal.
	ErrInvalidNormal = errors.New("distributions: normal requires sigma >= 0")

	// ErrLogNormalMeanNonPositive indicates FromEstimate was asked to
	// build a lognormal with mean <= 0; the caller falls back to Normal
	// per §4.2, this error is only returned by the low-level solver.
	ErrLogNormalMeanNonPositive = errors.New("distributions: lognormal requires mean > 0")

	// ErrInverseCDFRange indicates InverseCDF was called with p outside
	// [0, 1].
	ErrInverseCDFRange = errors.New("distributions: inverseCDF requires p in [0, 1]")

	// ErrUnknownKind indicates FromEstimate was asked to build a Kind it
	// does not recognize.
	ErrUnknownKind = errors.New("distributions: unknown distribution kind")
)

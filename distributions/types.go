package distributions

import "github.com/spertscheduler/engine/rng"

// Kind identifies one of the four supported distribution families.
// It is the wire/storage representation used throughout the engine
// (Activity.distributionType in §3).
type Kind string

const (
	Normal     Kind = "normal"
	LogNormalK Kind = "logNormal"
	Triangular Kind = "triangular"
	Uniform    Kind = "uniform"
)

// Distribution is the shared capability set (§9 "Dynamic dispatch") every
// concrete distribution implements.
type Distribution interface {
	// Sample draws one value using s as the uniform source.
	Sample(s *rng.Stream) float64
	// Mean returns the distribution's analytic mean.
	Mean() float64
	// Variance returns the distribution's analytic variance.
	Variance() float64
	// InverseCDF returns the value at cumulative probability p, or
	// ErrInverseCDFRange if p is outside [0, 1].
	InverseCDF(p float64) (float64, error)
	// Parameters returns the distribution's defining parameters, keyed by
	// name, for display/export.
	Parameters() map[string]float64
}

package distributions

import "github.com/spertscheduler/engine/estimate"

// Estimate bundles the inputs §4.2's "Construction from three-point
// estimates" requires. SDOverride <= 0 means "not set", matching
// estimate.ResolveSD's convention.
type Estimate struct {
	Min, MostLikely, Max float64
	Confidence           estimate.ConfidenceLevel
	SDOverride           float64
}

// FromEstimate builds the distribution named by kind from a three-point
// estimate, following §4.2 exactly:
//
//   - mean is always the PERT mean.
//   - sd is sdOverride if positive, else RSM(confidence)*(max-min).
//   - normal becomes a TruncatedNormalDist ("T-Normal") over [min, max].
//   - logNormal solves (mu, sigma) to match (mean, sd); falls back to
//     Normal(mean, sd) when mean <= 0.
//   - triangular uses (min, mostLikely, max) directly.
//   - uniform uses (min, max) directly.
func FromEstimate(kind Kind, e Estimate) (Distribution, error) {
	mean := estimate.PertMean(e.Min, e.MostLikely, e.Max)
	sd, err := estimate.ResolveSD(e.Min, e.Max, e.Confidence, e.SDOverride)
	if err != nil {
		return nil, err
	}

	switch kind {
	case Normal:
		return NewTruncatedNormal(mean, sd, e.Min, e.Max)
	case LogNormalK:
		ln, err := NewLogNormalFromMeanSD(mean, sd)
		if err == ErrLogNormalMeanNonPositive {
			return NewNormal(mean, sd)
		}
		if err != nil {
			return nil, err
		}
		return ln, nil
	case Triangular:
		return NewTriangular(e.Min, e.MostLikely, e.Max)
	case Uniform:
		return NewUniform(e.Min, e.Max)
	default:
		return nil, ErrUnknownKind
	}
}

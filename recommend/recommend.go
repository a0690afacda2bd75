package recommend

import (
	"math"

	"github.com/spertscheduler/engine/distributions"
	"github.com/spertscheduler/engine/estimate"
)

// skewThreshold and cvThreshold are the §4.10 cascade thresholds.
const (
	skewThreshold = 0.1
	cvThreshold   = 0.3
)

// Result is a recommended distribution kind plus a short rationale.
type Result struct {
	Kind      distributions.Kind
	Rationale string
}

// Distribution recommends a distribution kind for the given three-point
// estimate, following the ordered cascade in §4.10.
func Distribution(min, mostLikely, max float64, confidence estimate.ConfidenceLevel, sdOverride float64) (Result, error) {
	if mostLikely == min && mostLikely == max {
		return Result{Kind: distributions.Normal, Rationale: "degenerate estimate (min == mostLikely == max)"}, nil
	}
	if mostLikely == min || mostLikely == max {
		return Result{Kind: distributions.Uniform, Rationale: "no distinct mode (mostLikely coincides with min or max)"}, nil
	}

	mean := estimate.PertMean(min, mostLikely, max)
	sd, err := estimate.ResolveSD(min, max, confidence, sdOverride)
	if err != nil {
		return Result{}, err
	}
	if sd == 0 || mean == 0 {
		return Result{Kind: distributions.Normal, Rationale: "zero spread or zero mean"}, nil
	}

	skew := estimate.SkewIndicator(mean, mostLikely, sd)
	cv := estimate.CV(sd, mean)

	if math.Abs(skew) < skewThreshold && cv < cvThreshold {
		return Result{Kind: distributions.Normal, Rationale: "low skew and low coefficient of variation"}, nil
	}
	if skew > skewThreshold && cv > cvThreshold {
		return Result{Kind: distributions.LogNormalK, Rationale: "positive skew and high coefficient of variation"}, nil
	}
	return Result{Kind: distributions.Triangular, Rationale: "no threshold cleanly matched"}, nil
}

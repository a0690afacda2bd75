package estimate

// PertMean returns the PERT weighted mean (min + 4*mostLikely + max) / 6.
func PertMean(min, mostLikely, max float64) float64 {
	return (min + 4*mostLikely + max) / 6
}

// ResolveSD returns sdOverride when it is set (> 0); otherwise it derives
// the standard deviation from the confidence level's RSM multiplier times
// the estimate range (max - min), per §4.2/§4.3.
//
// sdOverride <= 0 means "not set" — callers represent an absent override
// as 0 or any non-positive value, matching the spec's "sdOverride
// (positive)" field definition in §3.
func ResolveSD(min, max float64, confidence ConfidenceLevel, sdOverride float64) (float64, error) {
	if sdOverride > 0 {
		return sdOverride, nil
	}
	multiplier, err := RSM(confidence)
	if err != nil {
		return 0, err
	}
	return multiplier * (max - min), nil
}

// SkewIndicator returns (mean - mostLikely) / sd, or 0 when sd is not
// positive (§4.3).
func SkewIndicator(mean, mostLikely, sd float64) float64 {
	if sd <= 0 {
		return 0
	}
	return (mean - mostLikely) / sd
}

// CV returns the coefficient of variation sd / mean, or 0 when mean is
// not positive (§4.3).
func CV(sd, mean float64) float64 {
	if mean <= 0 {
		return 0
	}
	return sd / mean
}

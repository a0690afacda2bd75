package sensitivity

import (
	"sort"

	"github.com/google/uuid"

	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/scenario"
)

// zScore is the one-sided 95th-percentile standard normal factor used for
// the impact-score recompute (§4.9).
const zScore = 1.645

// scaleFactor is the what-if scale applied to each estimate when
// recomputing the impact score (§4.9).
const scaleFactor = 1.1

// Result is one activity's sensitivity profile.
type Result struct {
	ActivityID           uuid.UUID
	Name                 string
	Mean                 float64
	SD                   float64
	Variance             float64
	VarianceContribution float64
	ImpactScore          float64
	CV                   float64
}

// Analyze computes the sensitivity profile of every activity, sorted by
// ImpactScore descending (§4.9).
func Analyze(activities []*scenario.Activity) ([]Result, error) {
	results := make([]Result, len(activities))
	totalVariance := 0.0

	for i, a := range activities {
		mean := estimate.PertMean(a.Min, a.MostLikely, a.Max)
		sd, err := estimate.ResolveSD(a.Min, a.Max, a.ConfidenceLevel, a.SDOverride)
		if err != nil {
			return nil, err
		}
		variance := sd * sd
		totalVariance += variance

		scaledMean := estimate.PertMean(scaleFactor*a.Min, scaleFactor*a.MostLikely, scaleFactor*a.Max)
		scaledSD, err := scaledStandardDeviation(a)
		if err != nil {
			return nil, err
		}

		results[i] = Result{
			ActivityID:  a.ID,
			Name:        a.Name,
			Mean:        mean,
			SD:          sd,
			Variance:    variance,
			ImpactScore: (scaledMean + zScore*scaledSD) - (mean + zScore*sd),
			CV:          estimate.CV(sd, mean),
		}
	}

	for i := range results {
		if totalVariance > 0 {
			results[i].VarianceContribution = results[i].Variance / totalVariance
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ImpactScore > results[j].ImpactScore
	})
	return results, nil
}

// scaledStandardDeviation resolves the standard deviation of the
// scale-factor-widened estimate: an explicit sdOverride scales directly,
// otherwise the RSM multiplier is reapplied to the scaled range.
func scaledStandardDeviation(a *scenario.Activity) (float64, error) {
	if a.SDOverride > 0 {
		return a.SDOverride * scaleFactor, nil
	}
	return estimate.ResolveSD(scaleFactor*a.Min, scaleFactor*a.Max, a.ConfidenceLevel, 0)
}

// TopN returns the first n results (or all of them, if n exceeds the
// slice length). results must already be sorted by ImpactScore
// descending, as Analyze returns them.
func TopN(results []Result, n int) []Result {
	if n >= len(results) {
		return results
	}
	return results[:n]
}

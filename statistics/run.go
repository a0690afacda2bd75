package statistics

import (
	"time"

	"github.com/google/uuid"
)

const defaultHistogramBinCount = 50

// BuildSimulationRun runs the full statistics pass over samples (which it
// sorts in place) and assembles a SimulationRun (§3, §4.7). samples must
// be the packed trial-count-length buffer the Monte Carlo driver
// produced; trialCount is read as len(samples) so invariant (iv) in §3
// ("samples.length == trialCount") holds by construction.
func BuildSimulationRun(samples []float64, seed, engineVersion string) (*SimulationRun, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySamples
	}
	SortInPlace(samples)

	percentiles, err := ComputeStandardPercentiles(samples)
	if err != nil {
		return nil, err
	}

	return &SimulationRun{
		ID:                uuid.New(),
		Timestamp:         time.Now().UTC(),
		TrialCount:        len(samples),
		Seed:              seed,
		EngineVersion:     engineVersion,
		Percentiles:       percentiles,
		HistogramBins:     Histogram(samples, defaultHistogramBinCount),
		Mean:              Mean(samples),
		StandardDeviation: StandardDeviation(samples),
		MinSample:         samples[0],
		MaxSample:         samples[len(samples)-1],
		Samples:           samples,
	}, nil
}

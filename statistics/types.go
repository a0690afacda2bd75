package statistics

import (
	"time"

	"github.com/google/uuid"
)

// StandardPercentileRanks are the seventeen percentile ranks every
// SimulationRun reports (§3), in ascending order.
var StandardPercentileRanks = []int{
	5, 10, 25, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 96, 97, 98, 99,
}

// HistogramBin is one contiguous bin of the sample distribution (§4.7).
// Bins are closed-open ([Lo, Hi)) except the last bin of a histogram,
// which is closed-closed ([Lo, Hi]).
type HistogramBin struct {
	Lo, Hi float64
	Count  int
}

// CDFPoint is one (value, cumulative probability) sample of the
// empirical CDF (§4.7).
type CDFPoint struct {
	Value       float64
	Probability float64
}

// SimulationRun is the statistics pass's output (§3): everything derived
// from one Monte Carlo driver's sample buffer.
type SimulationRun struct {
	ID               uuid.UUID
	Timestamp        time.Time
	TrialCount       int
	Seed             string
	EngineVersion    string
	Percentiles      map[int]float64
	HistogramBins    []HistogramBin
	Mean             float64
	StandardDeviation float64
	MinSample        float64
	MaxSample        float64
	Samples          []float64
}

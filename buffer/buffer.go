package buffer

import (
	"errors"
	"math"

	"github.com/spertscheduler/engine/calendar"
	"github.com/spertscheduler/engine/scheduler"
	"github.com/spertscheduler/engine/statistics"
)

// ErrPercentileUnavailable is returned when the requested project
// probability target has no corresponding stored percentile (§4.8:
// "buffer is unavailable (reported as null)").
var ErrPercentileUnavailable = errors.New("buffer: percentile unavailable for project probability target")

// Result is the computed buffer for one schedule/run pair.
type Result struct {
	BufferDays         int
	BufferedFinishDate calendar.Date
}

// Compute derives the buffer (§4.8): the gap between the simulation's
// value at probability target p (expressed as a percentile rank, e.g.
// 0.95 -> rank 95) and the deterministic schedule's total duration.
func Compute(sched *scheduler.DeterministicSchedule, run *statistics.SimulationRun, p float64, cal *calendar.Calendar) (*Result, error) {
	rank := int(math.Round(p * 100))
	v, ok := run.Percentiles[rank]
	if !ok {
		return nil, ErrPercentileUnavailable
	}

	days := int(math.Round(v)) - sched.TotalDurationDays
	if days < 0 {
		days = 0
	}

	return &Result{
		BufferDays:         days,
		BufferedFinishDate: calendar.AddWorkingDays(sched.ProjectEndDate, days, cal),
	}, nil
}

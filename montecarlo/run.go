package montecarlo

import (
	"context"

	"github.com/google/uuid"

	"github.com/spertscheduler/engine/rng"
	"github.com/spertscheduler/engine/scenario"
)

// ProgressFunc is called every progressInterval completed trials, and
// once more after the final trial when trialCount is not a multiple of
// progressInterval, so the last call always has completed == total.
type ProgressFunc func(completed, total int)

// sampler returns one activity's per-trial draw.
type sampler func(s *rng.Stream) float64

// Run executes the single-threaded trial loop described in §4.6.
//
// overrides, when non-nil, maps an activity id to a fixed deterministic
// value used in place of sampling — same treatment as a completed
// activity's actualDuration.
//
// ctx is checked only between whole trials, at progressInterval
// boundaries (§5 "Suspension points"); a cancelled ctx aborts the loop
// and discards the partial sample buffer.
func Run(ctx context.Context, activities []*scenario.Activity, trialCount int, rngSeed string, overrides map[uuid.UUID]float64, onProgress ProgressFunc, progressInterval int) ([]float64, error) {
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}
	if trialCount <= 0 {
		return nil, ErrInvalidTrialCount
	}
	if progressInterval <= 0 {
		progressInterval = trialCount
	}

	samplers, err := buildSamplers(activities, overrides)
	if err != nil {
		return nil, err
	}

	stream := rng.NewStream(rngSeed)
	samples := make([]float64, trialCount)

	for i := 0; i < trialCount; i++ {
		var sum float64
		for _, draw := range samplers {
			sum += draw(stream)
		}
		samples[i] = sum

		completed := i + 1
		if completed%progressInterval == 0 {
			if onProgress != nil {
				onProgress(completed, trialCount)
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	if onProgress != nil && trialCount%progressInterval != 0 {
		onProgress(trialCount, trialCount)
	}
	return samples, nil
}

// buildSamplers builds one sampler closure per activity, fixed once
// before the trial loop starts (§4.6).
func buildSamplers(activities []*scenario.Activity, overrides map[uuid.UUID]float64) ([]sampler, error) {
	samplers := make([]sampler, len(activities))
	for i, a := range activities {
		if v, ok := overrides[a.ID]; ok {
			fixed := v
			samplers[i] = func(_ *rng.Stream) float64 { return fixed }
			continue
		}
		if a.Status == scenario.Complete && a.ActualDuration != nil {
			fixed := *a.ActualDuration
			samplers[i] = func(_ *rng.Stream) float64 { return fixed }
			continue
		}

		dist, err := a.Distribution()
		if err != nil {
			return nil, err
		}
		samplers[i] = dist.Sample
	}
	return samplers, nil
}

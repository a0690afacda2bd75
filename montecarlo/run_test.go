package montecarlo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spertscheduler/engine/distributions"
	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/montecarlo"
	"github.com/spertscheduler/engine/scenario"
)

func twoActivities() []*scenario.Activity {
	return []*scenario.Activity{
		scenario.NewActivity("a", 3, 5, 10, estimate.MediumConfidence, distributions.Triangular),
		scenario.NewActivity("b", 10, 15, 25, estimate.MediumConfidence, distributions.Triangular),
	}
}

func TestRun_EmptyActivitiesErrors(t *testing.T) {
	_, err := montecarlo.Run(context.Background(), nil, 100, "seed", nil, nil, 10)
	require.ErrorIs(t, err, montecarlo.ErrNoActivities)
}

func TestRun_InvalidTrialCountErrors(t *testing.T) {
	_, err := montecarlo.Run(context.Background(), twoActivities(), 0, "seed", nil, nil, 10)
	require.ErrorIs(t, err, montecarlo.ErrInvalidTrialCount)
}

func TestRun_DeterministicAcrossIdenticalSeeds(t *testing.T) {
	a := twoActivities()
	b := twoActivities()

	samplesA, err := montecarlo.Run(context.Background(), a, 1000, "fixed-seed", nil, nil, 100)
	require.NoError(t, err)
	samplesB, err := montecarlo.Run(context.Background(), b, 1000, "fixed-seed", nil, nil, 100)
	require.NoError(t, err)

	require.Equal(t, samplesA, samplesB)
}

func TestRun_DifferentSeedsDiverge(t *testing.T) {
	samplesA, err := montecarlo.Run(context.Background(), twoActivities(), 1000, "seed-one", nil, nil, 100)
	require.NoError(t, err)
	samplesB, err := montecarlo.Run(context.Background(), twoActivities(), 1000, "seed-two", nil, nil, 100)
	require.NoError(t, err)

	require.NotEqual(t, samplesA, samplesB)
}

func TestRun_ProgressCallbackReachesCompletion(t *testing.T) {
	var lastCompleted, lastTotal int
	calls := 0
	_, err := montecarlo.Run(context.Background(), twoActivities(), 250, "seed", nil, func(completed, total int) {
		calls++
		lastCompleted, lastTotal = completed, total
	}, 100)
	require.NoError(t, err)
	require.Equal(t, 250, lastCompleted)
	require.Equal(t, 250, lastTotal)
	require.Equal(t, 3, calls) // at 100, 200, and a final call for the remaining 50
}

func TestRun_CompleteActivityUsesFixedActualDuration(t *testing.T) {
	activities := twoActivities()
	require.NoError(t, activities[0].SetActualDuration(7))

	samples, err := montecarlo.Run(context.Background(), activities, 500, "seed", nil, nil, 50)
	require.NoError(t, err)
	for _, v := range samples {
		require.GreaterOrEqual(t, v, 7.0)
	}
}

func TestRun_OverrideMapWinsOverSampling(t *testing.T) {
	activities := twoActivities()
	overrides := map[uuid.UUID]float64{activities[0].ID: 42}

	samples, err := montecarlo.Run(context.Background(), activities, 50, "seed", overrides, nil, 10)
	require.NoError(t, err)
	for _, v := range samples {
		require.GreaterOrEqual(t, v, 42.0)
	}
}

func TestRun_ContextCancellationAbortsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := montecarlo.Run(ctx, twoActivities(), 1000, "seed", nil, nil, 10)
	require.Error(t, err)
}

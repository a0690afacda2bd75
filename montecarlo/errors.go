package montecarlo

import "errors"

// ErrNoActivities is returned when Run is asked to simulate an empty
// activity list.
var ErrNoActivities = errors.New("montecarlo: no activities to simulate")

// ErrInvalidTrialCount is returned when trialCount is not positive.
var ErrInvalidTrialCount = errors.New("montecarlo: trialCount must be positive")

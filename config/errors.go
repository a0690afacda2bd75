package config

import "github.com/spertscheduler/engine/scenario"

// ValidationError reports one malformed or out-of-range configuration
// value (§4.14), reusing the same shape as scenario validation so
// callers handle both uniformly.
type ValidationError = scenario.ValidationError

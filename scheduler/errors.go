package scheduler

import "errors"

// ErrNoActivities is returned when BuildSchedule is asked to schedule an
// empty activity list.
var ErrNoActivities = errors.New("scheduler: no activities to schedule")

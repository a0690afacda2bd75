package scheduler

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/spertscheduler/engine/calendar"
	"github.com/spertscheduler/engine/scenario"
)

// ScheduledActivity is one activity's placement in a DeterministicSchedule.
type ScheduledActivity struct {
	ActivityID uuid.UUID
	Name       string
	Duration   int // working days, >= 1
	StartDate  calendar.Date
	EndDate    calendar.Date
	IsActual   bool // true when Duration came from a recorded actualDuration
}

// DeterministicSchedule is the back-to-back placement of every activity
// at a single probability target (§4.5).
type DeterministicSchedule struct {
	ProbabilityTarget float64
	Activities        []ScheduledActivity
	TotalDurationDays int
	ProjectEndDate    calendar.Date
}

// BuildSchedule places activities in order, starting at startDate, using
// probabilityTarget p to pick each non-complete activity's single-point
// duration (§4.5).
func BuildSchedule(activities []*scenario.Activity, startDate calendar.Date, p float64, cal *calendar.Calendar) (*DeterministicSchedule, error) {
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}

	out := &DeterministicSchedule{
		ProbabilityTarget: p,
		Activities:        make([]ScheduledActivity, 0, len(activities)),
	}

	cursor := startDate
	for i, a := range activities {
		d, isActual, err := activityDuration(a, p)
		if err != nil {
			return nil, fmt.Errorf("scheduler: activity %q: %w", a.Name, err)
		}

		var placeFrom calendar.Date
		if i == 0 {
			placeFrom = calendar.AddWorkingDays(cursor, 0, cal)
		} else {
			placeFrom = calendar.AddWorkingDays(cursor.AddDays(1), 0, cal)
		}
		end := calendar.AddWorkingDays(placeFrom, d-1, cal)

		out.Activities = append(out.Activities, ScheduledActivity{
			ActivityID: a.ID,
			Name:       a.Name,
			Duration:   d,
			StartDate:  placeFrom,
			EndDate:    end,
			IsActual:   isActual,
		})
		out.TotalDurationDays += d
		cursor = end
	}

	out.ProjectEndDate = cursor
	return out, nil
}

// activityDuration resolves one activity's single-point duration per §4.5
// steps 1-2.
func activityDuration(a *scenario.Activity, p float64) (int, bool, error) {
	if a.Status == scenario.Complete && a.ActualDuration != nil {
		return clampAtLeastOne(roundHalfToEven(*a.ActualDuration)), true, nil
	}

	dist, err := a.Distribution()
	if err != nil {
		return 0, false, err
	}
	v, err := dist.InverseCDF(p)
	if err != nil {
		return 0, false, err
	}
	return clampAtLeastOne(roundHalfToEven(v)), false, nil
}

func roundHalfToEven(v float64) int {
	return int(math.RoundToEven(v))
}

func clampAtLeastOne(d int) int {
	if d < 1 {
		return 1
	}
	return d
}

package scenario

// ActivityStatus is one state of the §4.11 state machine: planned ->
// inProgress -> complete, with complete terminal.
type ActivityStatus string

const (
	Planned    ActivityStatus = "planned"
	InProgress ActivityStatus = "inProgress"
	Complete   ActivityStatus = "complete"
)

// SetStatus transitions the activity to status, enforcing §4.11:
// transitioning to Complete requires ActualDuration already set.
func (a *Activity) SetStatus(status ActivityStatus) error {
	if status == Complete && a.ActualDuration == nil {
		return &ValidationError{Path: "status", Message: "cannot transition to complete without actualDuration set"}
	}
	a.Status = status
	return nil
}

// SetActualDuration sets the activity's actual duration and, per §4.11,
// moves it to Complete. duration must be nonnegative.
func (a *Activity) SetActualDuration(duration float64) error {
	if duration < 0 {
		return &ValidationError{Path: "actualDuration", Message: "must be nonnegative"}
	}
	a.ActualDuration = &duration
	a.Status = Complete
	return nil
}

// ClearActualDuration removes the activity's actual duration and, per
// §4.11 ("clearing actualDuration moves the activity back to planned"),
// moves it back to Planned.
func (a *Activity) ClearActualDuration() {
	a.ActualDuration = nil
	a.Status = Planned
}

// HasOpenQuestion reports whether this activity is in the combination
// §9's "Open question" flags: inProgress with an actualDuration set. The
// engine does not guess whether that duration should floor the sampled
// value — it only surfaces the case (§4.12).
func (a *Activity) HasOpenQuestion() bool {
	return a.Status == InProgress && a.ActualDuration != nil
}

// OpenQuestionFlag is an informational (non-error) note attached to a
// validated activity. It never fails validation and is never aggregated
// into ValidationErrors; callers decide whether and how to surface it.
type OpenQuestionFlag struct {
	Path    string
	Message string
}

package scenario

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/spertscheduler/engine/calendar"
	"github.com/spertscheduler/engine/distributions"
	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/statistics"
)

// Activity is one project activity (§3): identity, a three-point
// estimate, a confidence level, an optional SD override, a chosen
// distribution family, and a status.
type Activity struct {
	ID               uuid.UUID
	Name             string
	Min              float64
	MostLikely       float64
	Max              float64
	ConfidenceLevel  estimate.ConfidenceLevel
	SDOverride       float64 // <= 0 means unset
	DistributionType distributions.Kind
	Status           ActivityStatus
	ActualDuration   *float64
}

// NewActivity builds an Activity with a fresh id and Planned status.
func NewActivity(name string, min, mostLikely, max float64, confidence estimate.ConfidenceLevel, kind distributions.Kind) *Activity {
	return &Activity{
		ID:               uuid.New(),
		Name:             name,
		Min:              min,
		MostLikely:       mostLikely,
		Max:              max,
		ConfidenceLevel:  confidence,
		DistributionType: kind,
		Status:           Planned,
	}
}

// Distribution builds the activity's sampling distribution per §4.2,
// using its own (min, mostLikely, max, confidence, sdOverride).
func (a *Activity) Distribution() (distributions.Distribution, error) {
	return distributions.FromEstimate(a.DistributionType, distributions.Estimate{
		Min:        a.Min,
		MostLikely: a.MostLikely,
		Max:        a.Max,
		Confidence: a.ConfidenceLevel,
		SDOverride: a.SDOverride,
	})
}

// Validate checks Activity's invariants from §3, appending every
// violation found under path (the activity's position, e.g.
// "activities[2]") rather than stopping at the first. Alongside the
// errors it returns any informational OpenQuestionFlags (§9) — these
// never fail validation, they only surface the inProgress+actualDuration
// combination the engine does not resolve.
func (a *Activity) Validate(path string) (ValidationErrors, []OpenQuestionFlag) {
	var errs ValidationErrors
	field := func(name string) string { return path + "." + name }

	if a.Min < 0 || a.MostLikely < 0 || a.Max < 0 {
		errs = append(errs, &ValidationError{Path: field("min/mostLikely/max"), Message: "must all be nonnegative"})
	}
	if !(a.Min <= a.MostLikely && a.MostLikely <= a.Max) {
		errs = append(errs, &ValidationError{Path: field("min/mostLikely/max"), Message: "must satisfy min <= mostLikely <= max"})
	}
	if _, err := estimate.RSM(a.ConfidenceLevel); err != nil && a.SDOverride <= 0 {
		errs = append(errs, &ValidationError{Path: field("confidenceLevel"), Message: err.Error()})
	}
	switch a.DistributionType {
	case distributions.Normal, distributions.LogNormalK, distributions.Triangular, distributions.Uniform:
	default:
		errs = append(errs, &ValidationError{Path: field("distributionType"), Message: "unknown distribution type"})
	}
	switch a.Status {
	case Planned, InProgress, Complete:
	default:
		errs = append(errs, &ValidationError{Path: field("status"), Message: "unknown status"})
	}
	if a.Status == Complete && a.ActualDuration == nil {
		errs = append(errs, &ValidationError{Path: field("actualDuration"), Message: "required when status is complete"})
	}
	if a.ActualDuration != nil && *a.ActualDuration < 0 {
		errs = append(errs, &ValidationError{Path: field("actualDuration"), Message: "must be nonnegative"})
	}

	var flags []OpenQuestionFlag
	if a.HasOpenQuestion() {
		flags = append(flags, OpenQuestionFlag{
			Path:    field("status"),
			Message: "activity is inProgress with actualDuration set; the engine does not guess whether it should floor the sampled duration",
		})
	}
	return errs, flags
}

// Clone returns a deep copy of the activity, including a fresh ActualDuration
// pointer (never aliased with the original).
func (a *Activity) Clone() *Activity {
	clone := *a
	if a.ActualDuration != nil {
		d := *a.ActualDuration
		clone.ActualDuration = &d
	}
	return &clone
}

// ScenarioSettings holds the per-scenario knobs §3 describes, plus the
// defaults applied when creating new activities in this scenario.
type ScenarioSettings struct {
	TrialCount               int
	RNGSeed                  string
	ProbabilityTarget        float64
	ProjectProbabilityTarget float64

	// Defaults used when creating new activities (§3).
	DefaultConfidenceLevel  estimate.ConfidenceLevel
	DefaultDistributionType distributions.Kind
}

// DefaultScenarioSettings returns the spec's defaults (§3): trialCount
// 50000, probabilityTarget 0.50, projectProbabilityTarget 0.95.
func DefaultScenarioSettings(seed string) ScenarioSettings {
	return ScenarioSettings{
		TrialCount:               50000,
		RNGSeed:                  seed,
		ProbabilityTarget:        0.50,
		ProjectProbabilityTarget: 0.95,
		DefaultConfidenceLevel:   estimate.MediumConfidence,
		DefaultDistributionType:  distributions.Triangular,
	}
}

// Validate checks ScenarioSettings' invariants from §3.
func (s *ScenarioSettings) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	field := func(name string) string { return path + "." + name }

	if s.TrialCount < 1000 || s.TrialCount > 500000 {
		errs = append(errs, &ValidationError{Path: field("trialCount"), Message: "must be in [1000, 500000]"})
	}
	if s.RNGSeed == "" {
		errs = append(errs, &ValidationError{Path: field("rngSeed"), Message: "must be nonempty"})
	}
	if s.ProbabilityTarget < 0.01 || s.ProbabilityTarget > 0.99 {
		errs = append(errs, &ValidationError{Path: field("probabilityTarget"), Message: "must be in [0.01, 0.99]"})
	}
	if s.ProjectProbabilityTarget < 0.01 || s.ProjectProbabilityTarget > 0.99 {
		errs = append(errs, &ValidationError{Path: field("projectProbabilityTarget"), Message: "must be in [0.01, 0.99]"})
	}
	return errs
}

// Scenario is one named what-if: a start date, settings, an ordered
// Activity list, a Calendar, and an optional cached simulation result
// (§4.12).
type Scenario struct {
	ID                uuid.UUID
	Name              string
	StartDate         calendar.Date
	Settings          ScenarioSettings
	Activities        []*Activity
	Calendar          *calendar.Calendar
	SimulationResults *statistics.SimulationRun
}

// NewScenario builds a Scenario with a fresh id and the given settings.
func NewScenario(name string, startDate calendar.Date, settings ScenarioSettings, cal *calendar.Calendar) *Scenario {
	return &Scenario{
		ID:        uuid.New(),
		Name:      name,
		StartDate: startDate,
		Settings:  settings,
		Calendar:  cal,
	}
}

// Validate checks the scenario's own settings and every activity's
// invariants, aggregating all violations found.
func (s *Scenario) Validate() error {
	var errs ValidationErrors
	errs = append(errs, s.Settings.Validate("settings")...)
	for i, a := range s.Activities {
		aErrs, _ := a.Validate(activityPath(i))
		errs = append(errs, aErrs...)
	}
	return errIfAny(errs)
}

// OpenQuestions collects every activity's informational OpenQuestionFlag
// (§9), independent of Validate's pass/fail outcome.
func (s *Scenario) OpenQuestions() []OpenQuestionFlag {
	var flags []OpenQuestionFlag
	for i, a := range s.Activities {
		_, f := a.Validate(activityPath(i))
		flags = append(flags, f...)
	}
	return flags
}

func activityPath(i int) string {
	return "activities[" + strconv.Itoa(i) + "]"
}

// Project owns an ordered list of named Scenarios (§4.12).
type Project struct {
	ID        uuid.UUID
	Name      string
	Scenarios []*Scenario
}

// NewProject builds a Project with a fresh id.
func NewProject(name string) *Project {
	return &Project{ID: uuid.New(), Name: name}
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/spertscheduler/engine/calendar"
	"github.com/spertscheduler/engine/distributions"
	"github.com/spertscheduler/engine/estimate"
	"github.com/spertscheduler/engine/scenario"
)

// HolidayEntry is one custom holiday range in the TOML document.
type HolidayEntry struct {
	Name  string `toml:"name"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// ScenarioDefaults mirrors scenario.ScenarioSettings as TOML-decodable
// fields (§4.14).
type ScenarioDefaults struct {
	TrialCount               int     `toml:"trial_count"`
	ProbabilityTarget        float64 `toml:"probability_target"`
	ProjectProbabilityTarget float64 `toml:"project_probability_target"`
	DefaultConfidenceLevel   string  `toml:"default_confidence_level"`
	DefaultDistributionType  string  `toml:"default_distribution_type"`
}

// CalendarDefaults configures the default Calendar (§4.14): US federal
// holidays for a set of years, plus any custom holiday ranges.
type CalendarDefaults struct {
	USFederalHolidayYears []int          `toml:"us_federal_holiday_years"`
	ExtraHolidays         []HolidayEntry `toml:"holiday"`
}

// Document is the top-level TOML document loaded by LoadTOML.
type Document struct {
	Scenario ScenarioDefaults `toml:"scenario"`
	Calendar CalendarDefaults `toml:"calendar"`
}

// LoadTOML decodes path into a Document, surfacing a ValidationError
// wrapping the decode failure rather than panicking.
func LoadTOML(path string) (*Document, error) {
	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, &ValidationError{Path: path, Message: fmt.Sprintf("malformed TOML: %v", err)}
	}
	return &doc, nil
}

// BuildSettings converts ScenarioDefaults into a validated
// scenario.ScenarioSettings using seed as the RNG seed.
func (d ScenarioDefaults) BuildSettings(seed string) (scenario.ScenarioSettings, error) {
	confidence := estimate.ConfidenceLevel(d.DefaultConfidenceLevel)
	if _, err := estimate.RSM(confidence); err != nil {
		return scenario.ScenarioSettings{}, &ValidationError{Path: "scenario.default_confidence_level", Message: err.Error()}
	}

	kind := distributions.Kind(d.DefaultDistributionType)
	switch kind {
	case distributions.Normal, distributions.LogNormalK, distributions.Triangular, distributions.Uniform:
	default:
		return scenario.ScenarioSettings{}, &ValidationError{Path: "scenario.default_distribution_type", Message: "unknown distribution type"}
	}

	settings := scenario.ScenarioSettings{
		TrialCount:               d.TrialCount,
		RNGSeed:                  seed,
		ProbabilityTarget:        d.ProbabilityTarget,
		ProjectProbabilityTarget: d.ProjectProbabilityTarget,
		DefaultConfidenceLevel:   confidence,
		DefaultDistributionType:  kind,
	}
	if errs := settings.Validate("scenario"); len(errs) > 0 {
		return scenario.ScenarioSettings{}, errs
	}
	return settings, nil
}

// BuildCalendar builds a calendar.Calendar from the configured US
// federal holiday years plus any custom holiday entries.
func (c CalendarDefaults) BuildCalendar() (*calendar.Calendar, error) {
	var ranges []calendar.HolidayRange
	for _, year := range c.USFederalHolidayYears {
		ranges = append(ranges, calendar.USFederalHolidays(year)...)
	}
	for _, h := range c.ExtraHolidays {
		start, err := calendar.ParseDate(h.Start)
		if err != nil {
			return nil, &ValidationError{Path: "calendar.holiday.start", Message: err.Error()}
		}
		end, err := calendar.ParseDate(h.End)
		if err != nil {
			return nil, &ValidationError{Path: "calendar.holiday.end", Message: err.Error()}
		}
		ranges = append(ranges, calendar.HolidayRange{Name: h.Name, Start: start, End: end})
	}
	return calendar.NewCalendar(ranges...), nil
}

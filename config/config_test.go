package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spertscheduler/engine/config"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML_ValidDocumentRoundTrips(t *testing.T) {
	path := writeTempFile(t, "defaults.toml", `
[scenario]
trial_count = 50000
probability_target = 0.5
project_probability_target = 0.95
default_confidence_level = "mediumConfidence"
default_distribution_type = "triangular"

[calendar]
us_federal_holiday_years = [2025]
`)

	doc, err := config.LoadTOML(path)
	require.NoError(t, err)

	settings, err := doc.Scenario.BuildSettings("seed-1")
	require.NoError(t, err)
	require.Equal(t, 50000, settings.TrialCount)
	require.Equal(t, "seed-1", settings.RNGSeed)

	cal, err := doc.Calendar.BuildCalendar()
	require.NoError(t, err)
	require.Len(t, cal.Holidays, 12)
}

func TestLoadTOML_MalformedDocumentErrors(t *testing.T) {
	path := writeTempFile(t, "bad.toml", "this is not [valid toml")
	_, err := config.LoadTOML(path)
	require.Error(t, err)
}

func TestBuildSettings_UnknownConfidenceLevelErrors(t *testing.T) {
	defaults := config.ScenarioDefaults{
		TrialCount:               1000,
		ProbabilityTarget:        0.5,
		ProjectProbabilityTarget: 0.95,
		DefaultConfidenceLevel:   "not-a-real-level",
		DefaultDistributionType:  "triangular",
	}
	_, err := defaults.BuildSettings("seed")
	require.Error(t, err)
}

func TestBuildSettings_InvalidTrialCountErrors(t *testing.T) {
	defaults := config.ScenarioDefaults{
		TrialCount:               10, // below the [1000, 500000] bound
		ProbabilityTarget:        0.5,
		ProjectProbabilityTarget: 0.95,
		DefaultConfidenceLevel:   "mediumConfidence",
		DefaultDistributionType:  "triangular",
	}
	_, err := defaults.BuildSettings("seed")
	require.Error(t, err)
}

func TestBuildCalendar_RejectsInvalidHolidayDate(t *testing.T) {
	defaults := config.CalendarDefaults{
		ExtraHolidays: []config.HolidayEntry{{Name: "bad", Start: "not-a-date", End: "2025-01-01"}},
	}
	_, err := defaults.BuildCalendar()
	require.Error(t, err)
}

func TestLoadProcessConfig_DefaultsWhenEnvAbsent(t *testing.T) {
	t.Setenv("SPERT_PROGRESS_INTERVAL", "")
	os.Unsetenv("SPERT_PROGRESS_INTERVAL")
	os.Unsetenv("SPERT_LOG_LEVEL")
	os.Unsetenv("SPERT_HTTP_ADDR")
	os.Unsetenv("SPERT_DEFAULT_SEED")

	cfg, err := config.LoadProcessConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.ProgressInterval)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadProcessConfig_InvalidProgressIntervalErrors(t *testing.T) {
	t.Setenv("SPERT_PROGRESS_INTERVAL", "not-a-number")
	_, err := config.LoadProcessConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

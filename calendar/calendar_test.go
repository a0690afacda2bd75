package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spertscheduler/engine/calendar"
)

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := calendar.ParseDate("2025-01-06")
	require.NoError(t, err)
	require.Equal(t, "2025-01-06", d.String())
	require.Equal(t, time.Monday, d.Weekday())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := calendar.ParseDate("not-a-date")
	require.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestIsWorkingDay_WeekendAlwaysNonWorking(t *testing.T) {
	sat, _ := calendar.ParseDate("2025-01-04")
	sun, _ := calendar.ParseDate("2025-01-05")
	require.False(t, calendar.IsWorkingDay(sat, nil))
	require.False(t, calendar.IsWorkingDay(sun, nil))
}

func TestIsWorkingDay_HolidayExcluded(t *testing.T) {
	cal := calendar.NewCalendar(calendar.USFederalHolidays(2025)...)
	newYears, _ := calendar.ParseDate("2025-01-01")
	require.False(t, calendar.IsWorkingDay(newYears, cal))

	ordinaryTuesday, _ := calendar.ParseDate("2025-01-07")
	require.True(t, calendar.IsWorkingDay(ordinaryTuesday, cal))
}

func TestAddWorkingDays_ZeroSkipsToFirstWorkingDay(t *testing.T) {
	sat, _ := calendar.ParseDate("2025-01-04")
	got := calendar.AddWorkingDays(sat, 0, nil)
	require.Equal(t, "2025-01-06", got.String()) // next Monday
}

func TestAddWorkingDays_AvoidsAdjacentHolidays(t *testing.T) {
	// Thanksgiving 2025 is 2025-11-27 (4th Thursday); Day-After is
	// 2025-11-28. Starting Wednesday 2025-11-26 and asking for 1 more
	// working day must land on Monday 2025-12-01, skipping the weekend
	// and both holidays.
	cal := calendar.NewCalendar(calendar.USFederalHolidays(2025)...)
	wed, _ := calendar.ParseDate("2025-11-26")
	got := calendar.AddWorkingDays(wed, 1, cal)
	require.Equal(t, "2025-12-01", got.String())
}

func TestAddWorkingDays_NoHolidaysInYear(t *testing.T) {
	start, _ := calendar.ParseDate("2025-03-03") // Monday
	got := calendar.AddWorkingDays(start, 4, nil)
	require.Equal(t, "2025-03-07", got.String()) // Friday same week
}

func TestWorkingDaysBetween_Inclusive(t *testing.T) {
	a, _ := calendar.ParseDate("2025-01-06") // Monday
	b, _ := calendar.ParseDate("2025-01-10") // Friday
	require.Equal(t, 5, calendar.WorkingDaysBetween(a, b, nil))
}

func TestUSFederalHolidays_TwelveNamedHolidays(t *testing.T) {
	holidays := calendar.USFederalHolidays(2025)
	require.Len(t, holidays, 12)

	byName := map[string]calendar.HolidayRange{}
	for _, h := range holidays {
		byName[h.Name] = h
	}
	require.Equal(t, "2025-01-20", byName["Martin Luther King Jr. Day"].Start.String())
	require.Equal(t, "2025-05-26", byName["Memorial Day"].Start.String())
	require.Equal(t, "2025-11-27", byName["Thanksgiving Day"].Start.String())
	require.Equal(t, "2025-11-28", byName["Day After Thanksgiving"].Start.String())
}

func TestFormatDisplay_DoesNotAffectISOBoundary(t *testing.T) {
	d, _ := calendar.ParseDate("2025-07-04")
	out, err := calendar.FormatDisplay(d, "%A, %B %d, %Y")
	require.NoError(t, err)
	require.Contains(t, out, "2025")
	require.Equal(t, "2025-07-04", d.String())
}

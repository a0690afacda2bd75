package calendar

import "time"

// holidaySpec is one row of the US federal holiday table (§4.4): a name
// and the rule used to place it within a given year.
type holidaySpec struct {
	name string
	rule func(year int) Date
}

// usFederalHolidayTable lists the twelve named US federal holidays, in
// the order §4.4 enumerates them. Table-driven, one rule per row, so
// adding or adjusting a holiday never touches the others.
var usFederalHolidayTable = []holidaySpec{
	{"New Year's Day", func(y int) Date { return Date{y, time.January, 1} }},
	{"Martin Luther King Jr. Day", func(y int) Date { return nthWeekday(y, time.January, time.Monday, 3) }},
	{"Presidents' Day", func(y int) Date { return nthWeekday(y, time.February, time.Monday, 3) }},
	{"Memorial Day", func(y int) Date { return lastWeekday(y, time.May, time.Monday) }},
	{"Independence Day", func(y int) Date { return Date{y, time.July, 4} }},
	{"Labor Day", func(y int) Date { return nthWeekday(y, time.September, time.Monday, 1) }},
	{"Columbus Day", func(y int) Date { return nthWeekday(y, time.October, time.Monday, 2) }},
	{"Veterans Day", func(y int) Date { return Date{y, time.November, 11} }},
	{"Thanksgiving Day", func(y int) Date { return nthWeekday(y, time.November, time.Thursday, 4) }},
	{"Day After Thanksgiving", func(y int) Date { return nthWeekday(y, time.November, time.Thursday, 4).AddDays(1) }},
	{"Christmas Eve", func(y int) Date { return Date{y, time.December, 24} }},
	{"Christmas Day", func(y int) Date { return Date{y, time.December, 25} }},
}

// USFederalHolidays returns the twelve named US federal holidays for the
// given year as single-day HolidayRanges, in calendar order as the table
// defines them (not necessarily chronological, though in practice it is).
func USFederalHolidays(year int) []HolidayRange {
	out := make([]HolidayRange, 0, len(usFederalHolidayTable))
	for _, spec := range usFederalHolidayTable {
		d := spec.rule(year)
		out = append(out, HolidayRange{Name: spec.name, Start: d, End: d})
	}
	return out
}

// nthWeekday returns the date of the n-th occurrence (1-indexed) of
// weekday in the given month/year.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	first := Date{year, month, 1}
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	return Date{year, month, day}
}

// lastWeekday returns the date of the last occurrence of weekday in the
// given month/year.
func lastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	// Walk back from the first day of the following month.
	nextMonth := Date{year, month, 1}.AddDays(32) // guaranteed into next month
	last := Date{nextMonth.Year, nextMonth.Month, 1}.AddDays(-1)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDays(-offset)
}

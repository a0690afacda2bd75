// Package calendar implements working-day arithmetic over an ordered set
// of holiday date ranges and the fixed Saturday/Sunday weekend rule
// (§4.4). Dates cross interface boundaries as ISO "YYYY-MM-DD" strings
// and are held internally as a year/month/day Date value.
//
// USFederalHolidays generates the twelve named US federal holidays this
// engine's default calendar ships with; FormatDisplay renders a Date
// through a strftime-style layout for reports and CLI tables, layered on
// top of (never replacing) the ISO representation §4.4 mandates at every
// interface boundary.
package calendar

package calendar

// HolidayRange is an inclusive [Start, End] span of non-working calendar
// dates (§3). Name is informational (e.g. "Thanksgiving") and unused by
// the working-day predicate.
type HolidayRange struct {
	Name  string
	Start Date
	End   Date
}

// contains reports whether d falls within [r.Start, r.End] inclusive.
func (r HolidayRange) contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Calendar is an ordered set of holiday ranges layered over the fixed
// Saturday/Sunday weekend rule (§3).
type Calendar struct {
	Holidays []HolidayRange
}

// NewCalendar builds a Calendar from the given holiday ranges. The slice
// is copied so later mutation by the caller does not alias the Calendar.
func NewCalendar(holidays ...HolidayRange) *Calendar {
	cp := make([]HolidayRange, len(holidays))
	copy(cp, holidays)
	return &Calendar{Holidays: cp}
}

// IsWorkingDay reports whether d is Monday-Friday and not contained in
// any holiday range (§4.4). A nil Calendar has no holidays.
func IsWorkingDay(d Date, cal *Calendar) bool {
	wd := d.Weekday()
	if wd == 0 || wd == 6 { // time.Sunday == 0, time.Saturday == 6
		return false
	}
	if cal == nil {
		return true
	}
	for _, h := range cal.Holidays {
		if h.contains(d) {
			return false
		}
	}
	return true
}

// AddWorkingDays advances from start, counting only working days,
// stopping once n have elapsed (§4.4):
//
//   - n == 0 returns the first working day >= start.
//   - n > 0 walks day by day, counting each working day, returning the
//     date on which the n-th working day after (or including, when start
//     itself is not already a working day) start is reached.
//
// n must be >= 0; callers needing "n-1 more days" (as the scheduler does
// for an activity of duration d) pass d-1 directly.
func AddWorkingDays(start Date, n int, cal *Calendar) Date {
	cur := start
	for !IsWorkingDay(cur, cal) {
		cur = cur.AddDays(1)
	}
	if n == 0 {
		return cur
	}
	remaining := n
	for remaining > 0 {
		cur = cur.AddDays(1)
		if IsWorkingDay(cur, cal) {
			remaining--
		}
	}
	return cur
}

// WorkingDaysBetween counts working days in [a, b] inclusive. If a is
// after b, the range is swapped (the count is symmetric).
func WorkingDaysBetween(a, b Date, cal *Calendar) int {
	if a.After(b) {
		a, b = b, a
	}
	count := 0
	for cur := a; !cur.After(b); cur = cur.AddDays(1) {
		if IsWorkingDay(cur, cal) {
			count++
		}
	}
	return count
}

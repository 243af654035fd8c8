package booking

import "time"

// isExcludedDate implements the institutional holiday calendar applied to
// daily and custom recurrence. A date is excluded when it is a Friday, or
// when it is the 1st, 3rd or 4th Saturday of its month. The 2nd Saturday is
// a working day. A month with only four Saturdays still excludes the 4th.
func isExcludedDate(d time.Time) bool {
	switch d.Weekday() {
	case time.Friday:
		return true
	case time.Saturday:
		ordinal := (d.Day()-1)/7 + 1
		return ordinal == 1 || ordinal == 3 || ordinal == 4
	default:
		return false
	}
}

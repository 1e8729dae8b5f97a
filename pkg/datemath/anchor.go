package datemath

import "time"

// US Pacific offsets. The DST window is evaluated by hand so the anchor does not depend on
// the tz database being present on the host.
const (
	pacificStandardOffset = -8 * time.Hour
	pacificDaylightOffset = -7 * time.Hour
)

// PacificToday returns the US Pacific calendar date of now, at midnight in UTC.
// DST runs from 02:00 PST on the second Sunday of March to 02:00 PDT on the first Sunday of November.
func PacificToday(now time.Time) time.Time {
	utc := now.UTC()
	offset := pacificStandardOffset
	if InPacificDST(utc) {
		offset = pacificDaylightOffset
	}
	return StartOfDay(utc.Add(offset))
}

// InPacificDST reports whether the instant t falls inside the US daylight-saving window.
func InPacificDST(t time.Time) bool {
	utc := t.UTC()
	year := utc.Year()

	// 02:00 PST == 10:00 UTC, 02:00 PDT == 09:00 UTC.
	start := nthSunday(year, time.March, 2).Add(10 * time.Hour)
	end := nthSunday(year, time.November, 1).Add(9 * time.Hour)

	return !utc.Before(start) && utc.Before(end)
}

// nthSunday returns midnight UTC of the n-th Sunday of the month.
func nthSunday(year int, month time.Month, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	toSunday := (7 - int(first.Weekday())) % 7
	return first.AddDate(0, 0, toSunday+7*(n-1))
}

// StartOfDay returns the calendar date of t (read in t's own location) at midnight UTC.
// All date arithmetic runs on this value, so DST shifts can never move a day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

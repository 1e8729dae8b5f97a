package datemath

import (
	"regexp"
	"time"
)

// WeekdayPattern matches a full or abbreviated weekday name. Longer forms come first so that
// "tues" and "thurs" win over their prefixes.
const WeekdayPattern = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|tues|tue|thurs|thur|thu|sun|mon|wed|fri|sat`

// ClockPattern matches "4pm", "4 pm", "10:30am". Hours run 1-12 and minutes 00-59, so "13pm"
// is not a clock time.
const ClockPattern = `(?:1[0-2]|0?[1-9])(?::[0-5]\d)?\s*(?:am|pm)`

// PartOfDayPattern matches the named times of day.
const PartOfDayPattern = `noon|midnight|morning|afternoon|evening|tonight|night`

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// partsOfDay is checked in order; the first keyword present wins.
var partsOfDay = []struct {
	re     *regexp.Regexp
	hour   int
	minute int
}{
	{regexp.MustCompile(`(?i)\bnoon\b`), 12, 0},
	{regexp.MustCompile(`(?i)\bmidnight\b`), 0, 0},
	{regexp.MustCompile(`(?i)\bmorning\b`), 9, 0},
	{regexp.MustCompile(`(?i)\bafternoon\b`), 14, 0},
	{regexp.MustCompile(`(?i)\bevening\b`), 18, 0},
	{regexp.MustCompile(`(?i)\b(?:tonight|night)\b`), 20, 0},
}

var (
	clockRe       = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\b(?:tomorrow|tmr)\b`)
	todayRe       = regexp.MustCompile(`(?i)\btoday\b`)
	nextWeekdayRe = regexp.MustCompile(`(?i)\bnext\s+(` + WeekdayPattern + `)\b`)
	weekdayRe     = regexp.MustCompile(`(?i)\b(?:(?:on|by|this)\s+)?(` + WeekdayPattern + `)\b`)
	inDurationRe  = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`)

	// temporalHintRe flags text that carries any date or time cue.
	temporalHintRe = regexp.MustCompile(`(?i)\d\s*(?:am|pm|:)|\b(?:today|tomorrow|tmr|` + WeekdayPattern + `)\b`)
)

// HasTemporalHint reports whether s contains a clock fragment, a relative-date keyword
// or a weekday name.
func HasTemporalHint(s string) bool {
	return temporalHintRe.MatchString(s)
}

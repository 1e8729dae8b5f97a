package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser computes the anchor date ("today") for a reference timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "America/New_York".
// An empty timezone selects the built-in US Pacific rules.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Today returns the anchor date for now.
func (p *Parser) Today(now time.Time) time.Time {
	if p == nil || p.location == nil {
		return PacificToday(now)
	}
	return StartOfDay(now.In(p.location))
}

// PacificZoneName is reported for the built-in Pacific rules.
const PacificZoneName = "America/Los_Angeles"

// Timezone returns the IANA name of the parser's reference zone.
func (p *Parser) Timezone() string {
	if p == nil || p.location == nil {
		return PacificZoneName
	}
	return p.location.String()
}

// At returns the instant of a resolved date and HH:MM clock time in the reference zone.
func (p *Parser) At(date, clock string) (time.Time, error) {
	day, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	tod, err := time.Parse(TimeFormat, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}

	if p != nil && p.location != nil {
		return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, p.location), nil
	}

	wall := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
	zone := time.FixedZone("PST", int(pacificStandardOffset.Seconds()))
	if InPacificDST(wall.Add(-pacificStandardOffset)) {
		zone = time.FixedZone("PDT", int(pacificDaylightOffset.Seconds()))
	}
	return time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), 0, 0, zone), nil
}

// Resolve extracts the date and time of a fragment relative to anchor.
func Resolve(text string, anchor time.Time) Resolution {
	return Resolution{
		Date: ResolveDate(text, anchor).Value(),
		Time: ResolveTime(text).Value(),
	}
}

// ResolveTime finds the first time expression in text. Named parts of the day take
// precedence over clock times.
func ResolveTime(text string) TimeMatch {
	for _, p := range partsOfDay {
		if p.re.MatchString(text) {
			return TimeMatch{Rule: TimePartOfDay, Hour: p.hour, Minute: p.minute}
		}
	}

	for _, m := range clockRe.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			continue
		}
		return TimeMatch{Rule: TimeClock, Hour: to24Hour(hour, strings.ToLower(m[3])), Minute: minute}
	}

	return TimeMatch{Rule: TimeNone}
}

func to24Hour(hour int, meridiem string) int {
	switch {
	case meridiem == "am" && hour == 12:
		return 0
	case meridiem == "pm" && hour != 12:
		return hour + 12
	}
	return hour
}

// ResolveDate finds the first date expression in text, in rule priority order.
func ResolveDate(text string, anchor time.Time) DateMatch {
	base := StartOfDay(anchor)

	if tomorrowRe.MatchString(text) {
		return DateMatch{Rule: DateTomorrow, Date: base.AddDate(0, 0, 1)}
	}

	if todayRe.MatchString(text) {
		return DateMatch{Rule: DateToday, Date: base}
	}

	if m := nextWeekdayRe.FindStringSubmatch(text); m != nil {
		offset := weekdayOffset(base.Weekday(), weekdays[strings.ToLower(m[1])]) + 7
		return DateMatch{Rule: DateNextWeekday, Date: base.AddDate(0, 0, offset)}
	}

	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		offset := weekdayOffset(base.Weekday(), weekdays[strings.ToLower(m[1])])
		return DateMatch{Rule: DateWeekday, Date: base.AddDate(0, 0, offset)}
	}

	if m := inDurationRe.FindStringSubmatch(text); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err == nil {
			return DateMatch{Rule: DateInDuration, Date: addDuration(base, amount, strings.ToLower(m[2]))}
		}
	}

	return DateMatch{Rule: DateNone}
}

// weekdayOffset returns the days from current to target within [0, 6]. A same-day match
// stays on the anchor.
func weekdayOffset(current, target time.Weekday) int {
	offset := int(target - current)
	if offset < 0 {
		offset += 7
	}
	return offset
}

// addDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func addDuration(base time.Time, amount int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7)
	case strings.HasPrefix(unit, "month"):
		return base.AddDate(0, amount, 0)
	default:
		return base.AddDate(0, 0, amount)
	}
}

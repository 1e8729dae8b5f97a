package taskparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"voice-task-manager/pkg/datemath"
)

// MaxNameLength is the rune budget of a task name before the ellipsis.
const MaxNameLength = 50

const ellipsis = "..."

// namePatterns are removed from a fragment in order to leave only the "what" of the task.
var namePatterns = []*regexp.Regexp{
	// at 8pm, by 5pm, around 9:30am, @3:30pm
	regexp.MustCompile(`(?i)(?:\b(?:at|by|around|before|after)\s+|@\s*)` + datemath.ClockPattern + `\b`),
	// around noon, in the morning, this evening
	regexp.MustCompile(`(?i)(?:\b(?:at|by|around|in\s+the|this)\s+|@\s*)(?:` + datemath.PartOfDayPattern + `)\b`),
	// bare clock time
	regexp.MustCompile(`(?i)\b` + datemath.ClockPattern + `\b`),
	// bare part of day
	regexp.MustCompile(`(?i)\b(?:` + datemath.PartOfDayPattern + `)\b`),
	// by tomorrow, today, tmr
	regexp.MustCompile(`(?i)\b(?:(?:on|by|for|this)\s+)?(?:tomorrow|tmr|today)\b`),
	// on friday, next mon, this thurs; the optional qualifier also covers bare weekday names
	regexp.MustCompile(`(?i)\b(?:(?:on|by|this|next)\s+)?(?:` + datemath.WeekdayPattern + `)\b`),
	// in 3 days
	regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:days?|weeks?|months?)\b`),
}

var danglingRe = regexp.MustCompile(`(?i)(?:(?:^|\s+)(?:at|by|on|around)|\s*@)\s*$`)

// NormalizeName turns a tag-free fragment into a display title: temporal phrases removed,
// first letter capitalized, at most MaxNameLength runes plus an ellipsis.
// It returns "" when nothing is left; choosing a substitute is up to the caller.
func NormalizeName(text string) string {
	name := text
	for _, re := range namePatterns {
		name = re.ReplaceAllString(name, " ")
	}
	name = strings.Trim(collapseSpaces(name), " ,;:-")

	for {
		stripped := danglingRe.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = strings.Trim(stripped, " ,;:-")
	}

	return truncate(capitalize(name))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxNameLength {
		return s
	}
	return strings.TrimRight(string(runes[:MaxNameLength]), " ") + ellipsis
}

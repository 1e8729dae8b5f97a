package datemath

import "time"

// DateFormat and TimeFormat are the output layouts of the resolver.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// DateRule identifies which date expression produced a resolution.
type DateRule int

const (
	DateNone DateRule = iota
	DateTomorrow
	DateToday
	DateNextWeekday
	DateWeekday
	DateInDuration
)

// TimeRule identifies which time expression produced a resolution.
type TimeRule int

const (
	TimeNone TimeRule = iota
	TimePartOfDay
	TimeClock
)

// DateMatch is the outcome of date resolution. Date is only meaningful when Rule != DateNone.
type DateMatch struct {
	Rule DateRule
	Date time.Time
}

// TimeMatch is the outcome of time resolution. Hour and Minute are only meaningful when Rule != TimeNone.
type TimeMatch struct {
	Rule   TimeRule
	Hour   int
	Minute int
}

// Resolution holds the nullable date and time strings extracted from one fragment.
type Resolution struct {
	Date *string
	Time *string
}

// Value formats the match as YYYY-MM-DD, or nil when nothing matched.
func (m DateMatch) Value() *string {
	switch m.Rule {
	case DateNone:
		return nil
	case DateTomorrow, DateToday, DateNextWeekday, DateWeekday, DateInDuration:
		s := m.Date.Format(DateFormat)
		return &s
	}
	return nil
}

// Value formats the match as HH:MM, or nil when nothing matched.
func (m TimeMatch) Value() *string {
	switch m.Rule {
	case TimeNone:
		return nil
	case TimePartOfDay, TimeClock:
		s := time.Date(2000, 1, 1, m.Hour, m.Minute, 0, 0, time.UTC).Format(TimeFormat)
		return &s
	}
	return nil
}

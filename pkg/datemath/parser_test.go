package datemath_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-manager/pkg/datemath"
)

// Wednesday, January 15, 2025
var anchor = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	require.NoError(t, err)

	p, err := datemath.NewParser("")
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = datemath.NewParser("Invalid/Timezone")
	assert.Error(t, err)
}

func TestParser_Today(t *testing.T) {
	utcParser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", utcParser.Today(time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)).Format(datemath.DateFormat))

	pacific, err := datemath.NewParser("")
	require.NoError(t, err)
	// 05:00 UTC is still the previous evening in Pacific time.
	assert.Equal(t, "2025-01-15", pacific.Today(time.Date(2025, 1, 16, 5, 0, 0, 0, time.UTC)).Format(datemath.DateFormat))
}

func TestResolveTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
		rule datemath.TimeRule
	}{
		{name: "noon", text: "lunch at noon", want: ptr("12:00"), rule: datemath.TimePartOfDay},
		{name: "midnight", text: "deploy at midnight", want: ptr("00:00"), rule: datemath.TimePartOfDay},
		{name: "morning", text: "Monday morning standup", want: ptr("09:00"), rule: datemath.TimePartOfDay},
		{name: "afternoon", text: "nap this afternoon", want: ptr("14:00"), rule: datemath.TimePartOfDay},
		{name: "evening", text: "EVENING walk", want: ptr("18:00"), rule: datemath.TimePartOfDay},
		{name: "night", text: "movie night", want: ptr("20:00"), rule: datemath.TimePartOfDay},
		{name: "tonight", text: "call him tonight", want: ptr("20:00"), rule: datemath.TimePartOfDay},
		{name: "part of day beats clock", text: "morning run at 7am", want: ptr("09:00"), rule: datemath.TimePartOfDay},
		{name: "pm hour", text: "concert at 4pm", want: ptr("16:00"), rule: datemath.TimeClock},
		{name: "minutes with space", text: "call at 10:30 am", want: ptr("10:30"), rule: datemath.TimeClock},
		{name: "12am", text: "backup at 12am", want: ptr("00:00"), rule: datemath.TimeClock},
		{name: "12pm", text: "lunch 12pm", want: ptr("12:00"), rule: datemath.TimeClock},
		{name: "uppercase meridiem", text: "Meet at 6PM", want: ptr("18:00"), rule: datemath.TimeClock},
		{name: "hour out of range skipped", text: "at 13pm or 3pm", want: ptr("15:00"), rule: datemath.TimeClock},
		{name: "no meridiem", text: "at 16:00", want: nil, rule: datemath.TimeNone},
		{name: "no time", text: "buy milk", want: nil, rule: datemath.TimeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ResolveTime(tt.text)
			assert.Equal(t, tt.rule, got.Rule)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
		rule datemath.DateRule
	}{
		{name: "tomorrow", text: "concert tomorrow", want: ptr("2025-01-16"), rule: datemath.DateTomorrow},
		{name: "tmr", text: "gym tmr", want: ptr("2025-01-16"), rule: datemath.DateTomorrow},
		{name: "tomorrow beats weekday", text: "friday or tomorrow", want: ptr("2025-01-16"), rule: datemath.DateTomorrow},
		{name: "today", text: "Today: pay rent", want: ptr("2025-01-15"), rule: datemath.DateToday},
		{name: "next monday", text: "dentist next Monday", want: ptr("2025-01-27"), rule: datemath.DateNextWeekday},
		{name: "next wednesday same weekday", text: "next wed", want: ptr("2025-01-22"), rule: datemath.DateNextWeekday},
		{name: "next tuesday", text: "next tuesday", want: ptr("2025-01-28"), rule: datemath.DateNextWeekday},
		{name: "bare friday", text: "concert at 6pm Friday", want: ptr("2025-01-17"), rule: datemath.DateWeekday},
		{name: "by monday", text: "submit report by Monday morning", want: ptr("2025-01-20"), rule: datemath.DateWeekday},
		{name: "this thurs", text: "this thurs", want: ptr("2025-01-16"), rule: datemath.DateWeekday},
		{name: "same day stays", text: "on Wednesday", want: ptr("2025-01-15"), rule: datemath.DateWeekday},
		{name: "tues abbreviation", text: "tues", want: ptr("2025-01-21"), rule: datemath.DateWeekday},
		{name: "in three days", text: "ship it in 3 days", want: ptr("2025-01-18"), rule: datemath.DateInDuration},
		{name: "in two weeks", text: "in 2 weeks", want: ptr("2025-01-29"), rule: datemath.DateInDuration},
		{name: "in one month", text: "renew in 1 month", want: ptr("2025-02-15"), rule: datemath.DateInDuration},
		{name: "month is not mon", text: "plan next month", want: nil, rule: datemath.DateNone},
		{name: "wedding is not wed", text: "wedding gift", want: nil, rule: datemath.DateNone},
		{name: "no date", text: "call mom", want: nil, rule: datemath.DateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ResolveDate(tt.text, anchor)
			assert.Equal(t, tt.rule, got.Rule)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestResolveDate_NextWeekdayWindow(t *testing.T) {
	names := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	for day := 0; day < 7; day++ {
		base := anchor.AddDate(0, 0, day)
		for _, name := range names {
			got := datemath.ResolveDate("next "+name, base)
			require.Equal(t, datemath.DateNextWeekday, got.Rule)
			days := int(got.Date.Sub(base).Hours() / 24)
			assert.GreaterOrEqual(t, days, 7, "next %s from %s", name, base.Weekday())
			assert.LessOrEqual(t, days, 13, "next %s from %s", name, base.Weekday())
		}
	}
}

func TestResolveDate_AnchorTimeIgnored(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	lateEvening := time.Date(2025, 1, 15, 23, 30, 0, 0, loc)

	got := datemath.ResolveDate("tomorrow", lateEvening)
	assert.Equal(t, ptr("2025-01-16"), got.Value())
}

func TestResolve(t *testing.T) {
	got := datemath.Resolve("Zed concert at 4pm tomorrow", anchor)
	assert.Equal(t, ptr("2025-01-16"), got.Date)
	assert.Equal(t, ptr("16:00"), got.Time)

	none := datemath.Resolve("call mom", anchor)
	assert.Nil(t, none.Date)
	assert.Nil(t, none.Time)
}

func TestHasTemporalHint(t *testing.T) {
	assert.True(t, datemath.HasTemporalHint("5pm"))
	assert.True(t, datemath.HasTemporalHint("at 9:30"))
	assert.True(t, datemath.HasTemporalHint("Fri"))
	assert.True(t, datemath.HasTemporalHint("tmr"))
	assert.False(t, datemath.HasTemporalHint("kids"))
	assert.False(t, datemath.HasTemporalHint("month"))
}

func ptr(s string) *string { return &s }

func TestClockPattern(t *testing.T) {
	re := regexp.MustCompile(`(?i)^` + datemath.ClockPattern + `$`)

	for _, s := range []string{"4pm", "4 pm", "04PM", "10:30am", "12am", "12:59 pm"} {
		assert.True(t, re.MatchString(s), s)
	}
	for _, s := range []string{"13pm", "0am", "00:30am", "9:75am", "16:00", "4"} {
		assert.False(t, re.MatchString(s), s)
	}
}

func TestMatchValue_Unmatched(t *testing.T) {
	assert.Nil(t, datemath.DateMatch{Rule: datemath.DateNone, Date: anchor}.Value())
	assert.Nil(t, datemath.TimeMatch{Rule: datemath.TimeNone, Hour: 9}.Value())
	assert.Equal(t, ptr("09:05"), datemath.TimeMatch{Rule: datemath.TimeClock, Hour: 9, Minute: 5}.Value())
}

package taskparse

import (
	"fmt"
	"strings"
	"time"

	"voice-task-manager/pkg/datemath"
)

// Validate checks a task produced outside the engine and brings it to the same shape:
// a non-empty capitalized name within MaxNameLength, a real YYYY-MM-DD date or nil,
// a real HH:MM time or nil, and de-duplicated tags without '#'.
func Validate(t ParsedTask) (ParsedTask, error) {
	name := collapseSpaces(StripTags(t.TaskName))
	if name == "" {
		return ParsedTask{}, fmt.Errorf("%w: task name is empty", ErrInvalidArgument)
	}

	date, err := validLayout(t.Date, datemath.DateFormat)
	if err != nil {
		return ParsedTask{}, fmt.Errorf("%w: date: %v", ErrInvalidArgument, err)
	}
	clock, err := validLayout(t.Time, datemath.TimeFormat)
	if err != nil {
		return ParsedTask{}, fmt.Errorf("%w: time: %v", ErrInvalidArgument, err)
	}

	tags := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return ParsedTask{
		TaskName:    truncate(capitalize(name)),
		Description: strings.TrimSpace(t.Description),
		Date:        date,
		Time:        clock,
		Tags:        dedupe(tags),
	}, nil
}

// validLayout accepts nil, or a value that round-trips through layout exactly.
func validLayout(v *string, layout string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return nil, err
	}
	if parsed.Format(layout) != s {
		return nil, fmt.Errorf("%q is not in %s form", s, layout)
	}
	return &s, nil
}

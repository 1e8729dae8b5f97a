package usecase

import (
	"context"
	"fmt"
	"time"

	"voice-task-manager/internal/model"
	"voice-task-manager/internal/task"
	"voice-task-manager/internal/task/repository"
	"voice-task-manager/pkg/datemath"
	"voice-task-manager/pkg/gcalendar"
	"voice-task-manager/pkg/taskparse"
)

const defaultEventMinutes = 60

// CreateBulk parses an utterance, stores each task for the caller and mirrors dated tasks to Google Calendar.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if !sc.Valid() {
		return task.CreateBulkOutput{}, task.ErrMissingScope
	}

	parsed, err := uc.Parse(ctx, sc, input)
	if err != nil {
		return task.CreateBulkOutput{}, err
	}

	created := make([]model.Task, 0, len(parsed.Tasks))
	for _, t := range parsed.Tasks {
		calendarLink := uc.tryCreateCalendarEvent(ctx, t)

		record, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
			OwnerID:      sc.UserID,
			TaskName:     t.TaskName,
			Description:  t.Description,
			Date:         t.Date,
			Time:         t.Time,
			Tags:         t.Tags,
			CalendarLink: calendarLink,
		})
		if err != nil {
			return task.CreateBulkOutput{}, fmt.Errorf("failed to store task %q: %w", t.TaskName, err)
		}

		uc.l.Infof(ctx, "CreateBulk: created task %q id=%s", record.TaskName, record.ID)
		created = append(created, record)
	}

	return task.CreateBulkOutput{
		Tasks:  created,
		Source: parsed.Source,
	}, nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event for a dated task.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t taskparse.ParsedTask) string {
	if uc.calendar == nil || t.Date == nil {
		return ""
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.TaskName,
		Description: t.Description,
		Timezone:    uc.dateMath.Timezone(),
	}

	if t.Time == nil {
		day, err := time.Parse(datemath.DateFormat, *t.Date)
		if err != nil {
			uc.l.Warnf(ctx, "CreateBulk: bad date for calendar event %q: %v", t.TaskName, err)
			return ""
		}
		req.AllDay = true
		req.StartTime = day
		req.EndTime = day.AddDate(0, 0, 1)
	} else {
		start, err := uc.dateMath.At(*t.Date, *t.Time)
		if err != nil {
			uc.l.Warnf(ctx, "CreateBulk: bad date/time for calendar event %q: %v", t.TaskName, err)
			return ""
		}
		req.StartTime = start
		req.EndTime = start.Add(defaultEventMinutes * time.Minute)
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "CreateBulk: calendar event creation failed for %q (non-fatal): %v", t.TaskName, err)
		return ""
	}

	return event.HtmlLink
}

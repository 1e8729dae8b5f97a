package model

import "time"

// Task is a stored task record produced from one utterance fragment.
type Task struct {
	ID           string
	OwnerID      string
	TaskName     string
	Description  string
	Date         *string // YYYY-MM-DD
	Time         *string // HH:MM, 24-hour
	Tags         []string
	Category     string // empty until suggested
	CalendarLink string // Google Calendar event link, may be empty
	CreatedAt    time.Time
}

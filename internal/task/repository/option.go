package repository

// CreateTaskOptions holds the parameters for storing a task.
type CreateTaskOptions struct {
	OwnerID      string
	TaskName     string
	Description  string
	Date         *string
	Time         *string
	Tags         []string
	Category     string
	CalendarLink string
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	OwnerID string
	Limit   int // Most recent N, 0 means all
}

package taskparse

// Fragment is one independently schedulable piece of an utterance.
type Fragment struct {
	Text     string
	Position int
}

// TagResult is the output of tag extraction for one fragment.
type TagResult struct {
	CleanText string
	Tags      []string
}

// ParsedTask is a structured task extracted from free text.
type ParsedTask struct {
	TaskName    string   `json:"taskName"`
	Description string   `json:"description"`
	Date        *string  `json:"date"` // YYYY-MM-DD
	Time        *string  `json:"time"` // HH:MM, 24-hour
	Tags        []string `json:"tags"`
}

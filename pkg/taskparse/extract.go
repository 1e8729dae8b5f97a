package taskparse

import (
	"fmt"
	"strings"
	"time"

	"voice-task-manager/pkg/datemath"
)

// UntitledTask replaces a name that normalization stripped down to nothing.
const UntitledTask = "Untitled task"

// Extract converts an utterance into tasks, resolving relative dates against anchor.
// The result is never empty for non-blank text.
func Extract(text string, anchor time.Time) ([]ParsedTask, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is empty", ErrInvalidArgument)
	}

	global := FindTags(text)
	fragments := Segment(text)

	tasks := make([]ParsedTask, 0, len(fragments))
	for _, f := range fragments {
		tasks = append(tasks, extractFragment(f, global, anchor))
	}
	return tasks, nil
}

func extractFragment(f Fragment, global []string, anchor time.Time) ParsedTask {
	tagged := ExtractTags(f.Text, global)
	when := datemath.Resolve(tagged.CleanText, anchor)

	name := NormalizeName(tagged.CleanText)
	if name == "" {
		name = UntitledTask
	}

	return ParsedTask{
		TaskName:    name,
		Description: tagged.CleanText,
		Date:        when.Date,
		Time:        when.Time,
		Tags:        tagged.Tags,
	}
}

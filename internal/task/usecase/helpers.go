package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"voice-task-manager/internal/task"
	"voice-task-manager/pkg/datemath"
	"voice-task-manager/pkg/taskparse"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// decodeLLMTasks accepts {"tasks": [...]} or a bare array.
func decodeLLMTasks(data string) ([]taskparse.ParsedTask, error) {
	if strings.HasPrefix(data, "[") {
		var tasks []taskparse.ParsedTask
		if err := json.Unmarshal([]byte(data), &tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	}

	var wrapped struct {
		Tasks []taskparse.ParsedTask `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(data), &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Tasks, nil
}

// resolveAnchor returns the anchor date: the caller's override, or today in the reference zone.
func (uc *implUseCase) resolveAnchor(anchorDate string) (time.Time, error) {
	if anchorDate == "" {
		return uc.dateMath.Today(uc.now()), nil
	}
	anchor, err := time.Parse(datemath.DateFormat, anchorDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", task.ErrInvalidAnchorDate, anchorDate)
	}
	return anchor, nil
}

func normalizeMode(m task.Mode) (task.Mode, error) {
	switch m {
	case "":
		return task.ModeAuto, nil
	case task.ModeAuto, task.ModeEngine:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", task.ErrInvalidMode, m)
}

// cacheKey identifies a suggestion by its text and the category set offered.
func cacheKey(text string, categories []string) string {
	return strings.ToLower(strings.TrimSpace(text)) + "\x00" + strings.ToLower(strings.Join(categories, "\x1f"))
}

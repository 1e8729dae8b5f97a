package usecase

import (
	"fmt"
	"strings"
)

const extractSystemPrompt = `You convert a spoken to-do utterance into structured tasks.
Split the utterance into independent tasks. For each task return:
- "taskName": the short action only, capitalized, no date or time words, at most 50 characters
- "description": the original fragment without hashtags
- "date": "YYYY-MM-DD" resolved against the anchor date, or null
- "time": "HH:MM" 24-hour, or null
- "tags": hashtags without '#', the fragment's own first, then the utterance-wide ones
Rules: "tomorrow" is anchor+1; a bare weekday is the next occurrence including the anchor day;
"next <weekday>" is one week after that; morning=09:00, noon=12:00, afternoon=14:00,
evening=18:00, tonight and night=20:00, midnight=00:00.
Reply with a JSON object only: {"tasks": [ ... ]}.`

const categorySystemPrompt = `You file a task into exactly one of the given categories.
Reply with a JSON object only: {"suggestedCategory": "<one of the categories, verbatim>", "confidence": "high" | "medium" | "low"}.`

func buildExtractPrompt(text, anchor string) string {
	return fmt.Sprintf("Anchor date: %s\nUtterance: %s", anchor, text)
}

func buildCategoryPrompt(text string, categories []string) string {
	return fmt.Sprintf("Categories: %s\nTask: %s", strings.Join(categories, ", "), text)
}

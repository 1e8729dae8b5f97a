package taskparse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"voice-task-manager/pkg/datemath"
)

// minFragmentLength is the length at or below which a fragment is dropped unless it
// carries a date or time cue.
const minFragmentLength = 5

// separators are applied in order; each pass re-splits every fragment of the previous pass.
var separators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\band\b(?:\s+i\s+(?:have|need\s+to)\b)?`),
	regexp.MustCompile(`(?i)\bthen\b`),
	regexp.MustCompile(`(?i),(?:\s*(?:and|i\s+have|i\s+need\s+to)\b)?`),
	regexp.MustCompile(`;`),
}

// Segment splits an utterance into task fragments, preserving input order.
// It always returns at least one fragment for non-blank input.
func Segment(text string) []Fragment {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	parts := []string{trimmed}
	for _, sep := range separators {
		next := make([]string, 0, len(parts))
		for _, p := range parts {
			next = append(next, sep.Split(p, -1)...)
		}
		parts = next
	}

	fragments := make([]Fragment, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) <= minFragmentLength && !datemath.HasTemporalHint(p) {
			continue
		}
		fragments = append(fragments, Fragment{Text: p, Position: len(fragments)})
	}

	if len(fragments) == 0 {
		return []Fragment{{Text: trimmed, Position: 0}}
	}
	return fragments
}

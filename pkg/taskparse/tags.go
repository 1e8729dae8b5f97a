package taskparse

import (
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`#(\w+)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// FindTags returns the hashtags of text in order of appearance, without the '#'.
// Duplicates are dropped by exact comparison; case is preserved.
func FindTags(text string) []string {
	return dedupe(nil, tagsOf(text))
}

// ExtractTags strips hashtags from a fragment and merges its own tags with the
// utterance-wide global tags, fragment-local first.
func ExtractTags(fragment string, global []string) TagResult {
	return TagResult{
		CleanText: StripTags(fragment),
		Tags:      dedupe(tagsOf(fragment), global),
	}
}

// StripTags removes every #token and collapses the whitespace left behind.
func StripTags(text string) string {
	return collapseSpaces(tagRe.ReplaceAllString(text, ""))
}

func tagsOf(text string) []string {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

func dedupe(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, tag := range list {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

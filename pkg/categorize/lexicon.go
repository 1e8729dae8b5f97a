package categorize

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon maps a lowercase category name to keywords that hint at it.
type Lexicon map[string][]string

// DefaultLexicon returns a fresh copy of the built-in category keywords.
func DefaultLexicon() Lexicon {
	return Lexicon{
		"work":     {"meeting", "project", "deadline", "report", "email", "client", "office", "presentation"},
		"personal": {"family", "friend", "birthday", "mom", "dad", "home"},
		"health":   {"gym", "workout", "doctor", "dentist", "exercise", "yoga", "medicine", "fitness"},
		"shopping": {"buy", "purchase", "order", "store", "groceries", "mall"},
		"finance":  {"pay", "bill", "bank", "budget", "tax", "invoice", "rent"},
		"learning": {"study", "read", "course", "learn", "class", "homework", "lecture"},
		"travel":   {"flight", "trip", "hotel", "vacation", "airport", "passport", "booking"},
		"social":   {"party", "dinner", "hangout", "concert", "meetup", "wedding"},
		"chores":   {"clean", "laundry", "dishes", "vacuum", "trash", "groceries"},
		"hobby":    {"paint", "guitar", "music", "game", "garden", "craft", "photography"},
	}
}

// LoadLexicon reads a lexicon from a YAML file.
//
// Expected format:
//
//	categories:
//	  work: [meeting, report, client]
//	  health: [gym, doctor]
//
// Category names and keywords are lowercased.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes the YAML lexicon format described on LoadLexicon.
func ParseLexicon(data []byte) (Lexicon, error) {
	var file struct {
		Categories map[string][]string `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, ErrEmptyLexicon
	}

	lex := make(Lexicon, len(file.Categories))
	for category, keywords := range file.Categories {
		name := strings.ToLower(strings.TrimSpace(category))
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				lex[name] = append(lex[name], kw)
			}
		}
	}
	return lex, nil
}

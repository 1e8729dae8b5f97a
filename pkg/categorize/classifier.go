package categorize

import (
	"fmt"
	"strings"
)

const (
	nameMatchScore    = 10
	keywordMatchScore = 5
)

// Classifier scores keyword overlap between free text and category labels.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	lexicon Lexicon
}

// NewClassifier creates a classifier. A nil lexicon selects DefaultLexicon.
func NewClassifier(lexicon Lexicon) *Classifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Classifier{lexicon: lexicon}
}

// Classify picks the best matching category for text. Ties go to the earlier category;
// with no match at all the first category is returned with low confidence.
func (c *Classifier) Classify(text string, categories []string) (Result, error) {
	if len(categories) == 0 {
		return Result{}, fmt.Errorf("%w: categories list is empty", ErrInvalidArgument)
	}

	lower := strings.ToLower(text)
	best, bestScore := categories[0], 0

	for _, category := range categories {
		if score := c.score(lower, category); score > bestScore {
			best, bestScore = category, score
		}
	}

	confidence := ConfidenceLow
	if bestScore > 0 {
		confidence = ConfidenceMedium
	}
	return Result{SuggestedCategory: best, Confidence: confidence}, nil
}

func (c *Classifier) score(text, category string) int {
	name := strings.ToLower(strings.TrimSpace(category))
	if name == "" {
		return 0
	}

	score := 0
	if strings.Contains(text, name) {
		score += nameMatchScore
	}
	for _, kw := range c.lexicon[name] {
		if strings.Contains(text, kw) {
			score += keywordMatchScore
		}
	}
	return score
}

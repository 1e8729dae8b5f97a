package categorize

// Confidence is a coarse quality label attached to a suggestion.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the known labels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Result is a category suggestion. SuggestedCategory is always one of the caller's categories.
type Result struct {
	SuggestedCategory string     `json:"suggestedCategory"`
	Confidence        Confidence `json:"confidence"`
}

package categorize

import "errors"

var (
	// ErrInvalidArgument is returned when no category was supplied.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyLexicon is returned when a lexicon file defines no categories.
	ErrEmptyLexicon = errors.New("lexicon has no categories")
)

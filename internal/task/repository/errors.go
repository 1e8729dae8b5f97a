package repository

import "errors"

var (
	ErrMissingOwner = errors.New("owner id is required")
)

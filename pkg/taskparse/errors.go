package taskparse

import "errors"

// ErrInvalidArgument is returned for input the engine cannot work with at all.
var ErrInvalidArgument = errors.New("invalid argument")

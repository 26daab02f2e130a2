package plan

import "errors"

// Domain-specific errors for the plan package.
var (
	ErrNotFound      = errors.New("plan not found")
	ErrEmptyUsername = errors.New("username is empty")
	ErrEmptySection  = errors.New("section name is empty")
)

package conversation

import "errors"

var (
	ErrAlreadyStarted = errors.New("conversation already started")
	ErrEmptyContent   = errors.New("message content is empty")
	ErrEmptyUsername  = errors.New("username is empty")
	ErrEmptyPlan      = errors.New("plan content is empty")
)

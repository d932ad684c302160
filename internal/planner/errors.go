package planner

import "errors"

var (
	ErrEmptyText = errors.New("empty text")
	ErrEmptyDate = errors.New("empty date")
	ErrNotFound  = errors.New("not found")
	ErrBadTime   = errors.New("time must be HH:MM")
)

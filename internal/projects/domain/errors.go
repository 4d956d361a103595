package domain

import "errors"

var (
	ErrNotFound    = errors.New("project not found")
	ErrDuplicateID = errors.New("duplicate project id")
	ErrMissingID   = errors.New("project id required")
)

package model

import "errors"

var (
	// ErrInvalidRequest is wrapped with the reason a request was rejected before reaching a backend.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound reports that a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

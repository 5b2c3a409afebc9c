package service

import "errors"

// Error taxonomy shared by all services. Controllers translate these into
// HTTP statuses; everything else is an internal error.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)

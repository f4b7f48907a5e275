package common

import "errors"

var (
	// ErrUnauthorized means the request carries no usable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is an expected lookup miss. It drives branching and is
	// not reported to callers of reconciliation.
	ErrNotFound = errors.New("not found")

	// ErrStorage wraps any failure of the remote document store.
	ErrStorage = errors.New("storage error")

	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream wraps failures of the text completion API.
	ErrUpstream = errors.New("upstream error")

	ErrMethodNotAllowed = errors.New("method not allowed")
)

package todo

import "errors"

var (
	// ErrNotFound covers both missing todos and todos owned by someone else.
	ErrNotFound       = errors.New("todo.not_found")
	ErrStorageFailure = errors.New("todo.storage_failure")
)

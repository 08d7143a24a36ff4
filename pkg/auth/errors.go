package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("auth.user_not_found")
	ErrEmailAlreadyExists = errors.New("auth.email_already_exists")
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
	ErrHashingFailed      = errors.New("auth.hashing_failed")
	ErrStorageFailure     = errors.New("auth.storage_failure")
)

package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyInstalled   = errors.New("installation already completed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Err joins a sentinel with the underlying cause and an optional formatted
// detail so callers can match with errors.Is.
func Err(typedError error, innerErr error, msgTemplate string, args ...any) error {
	if msgTemplate == "" {
		return errors.Join(typedError, innerErr)
	}
	return errors.Join(typedError, innerErr, fmt.Errorf(msgTemplate, args...))
}

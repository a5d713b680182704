package services

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the service layer. Handlers map them to HTTP
// status codes; anything else is treated as an internal failure.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrCourseNotFound  = errors.New("course not found")
	ErrNotCourseOwner  = errors.New("course belongs to another user")
)

// ValidationError carries every field-level validation message for a request,
// so handlers can return the full list instead of the first violation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

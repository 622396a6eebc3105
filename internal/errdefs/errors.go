// Package errdefs holds the error taxonomy shared by repositories, services
// and the HTTP layer. Services return these sentinels (possibly wrapped) and
// the HTTP layer maps them to status codes.
package errdefs

import "errors"

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("resource not found")
	ErrValidation       = errors.New("validation error")
	ErrAlreadyExists    = errors.New("resource already exists")

	ErrInvalidDueDate  = errors.New("due date must be in the future")
	ErrDeadlinePassed  = errors.New("submission deadline has passed")
	ErrNotEnrolled     = errors.New("student is not enrolled in this class")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this class")
	ErrInvalidGrade    = errors.New("grade is out of range")
	ErrCodeExhausted   = errors.New("could not generate a unique class code")
)

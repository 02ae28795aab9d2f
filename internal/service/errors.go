package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrOutletForbidden    = errors.New("cannot access another outlet's records")
)

// ValidationError names the first failing field of a rejected payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

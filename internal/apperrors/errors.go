// Package apperrors defines the error taxonomy shared by the auth and store
// layers. Handlers translate these into HTTP status codes; anything else is
// treated as an internal error.
package apperrors

import "fmt"

// ValidationError reports malformed or missing input, including a dangling
// foreign key on insert.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports a duplicate value for a unique field.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// AuthenticationError covers bad credentials and missing, malformed or
// expired tokens. The message never says which check failed.
type AuthenticationError struct {
	Msg string
}

func (e *AuthenticationError) Error() string { return e.Msg }

func Authentication(msg string) error {
	return &AuthenticationError{Msg: msg}
}

// AuthorizationError means the caller is authenticated but its role does not
// permit the operation.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func Authorization(msg string) error {
	return &AuthorizationError{Msg: msg}
}

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

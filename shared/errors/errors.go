package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func IsNotFound(err error) bool {
	var withCode *ErrorWithStatusCode
	return errors.As(err, &withCode) && withCode.StatusCode == http.StatusNotFound
}

// TransportError means the store (or the API, on the client side) could not be reached
// or did not answer. It is shown to users as a generic retry hint.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: transport failure", e.Op)
	}
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is an empty/invalid field or a duplicate of a unique record.
// Message is safe to show to the user as is.
type ValidationError struct {
	Message   string
	Duplicate bool
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(message string) error {
	return &ValidationError{Message: message}
}

func Duplicate(message string) error {
	return &ValidationError{Message: message, Duplicate: true}
}

// AuthRequiredError is returned when a mutation is attempted without a session.
type AuthRequiredError struct{}

func (e *AuthRequiredError) Error() string {
	return "Please sign in to continue"
}

var ErrAuthRequired error = &AuthRequiredError{}

const (
	transportMessage = "Connection error. Please check your internet and try again."
	internalMessage  = "Internal error"
)

// StatusCode maps an error of the taxonomy to an HTTP status.
func StatusCode(err error) int {
	var (
		withCode   *ErrorWithStatusCode
		validation *ValidationError
		auth       *AuthRequiredError
		transport  *TransportError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &withCode):
		return withCode.StatusCode
	case errors.As(err, &validation):
		if validation.Duplicate {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	case errors.As(err, &auth):
		return http.StatusUnauthorized
	case errors.As(err, &transport):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that may be shown to a user for err.
// Transport and unknown errors never leak their details.
func PublicMessage(err error) string {
	var (
		withCode   *ErrorWithStatusCode
		validation *ValidationError
		auth       *AuthRequiredError
		transport  *TransportError
	)
	switch {
	case errors.As(err, &withCode):
		return withCode.Message
	case errors.As(err, &validation):
		return validation.Message
	case errors.As(err, &auth):
		return auth.Error()
	case errors.As(err, &transport):
		return transportMessage
	default:
		return internalMessage
	}
}

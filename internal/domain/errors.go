package domain

import (
	"errors"
	"net/http"
)

// ErrorClass classifies a failed lookup. The class decides the HTTP status
// and whether the caller sees the failure as an error status or as a
// domain-level "not found" body.
type ErrorClass string

const (
	ClassValidation  ErrorClass = "validation"
	ClassNotFound    ErrorClass = "not_found"
	ClassRateLimited ErrorClass = "rate_limited"
	ClassUnavailable ErrorClass = "unavailable"
	ClassUpstream    ErrorClass = "upstream"
	ClassParse       ErrorClass = "parse"
)

const (
	// MsgRateLimited mirrors the user-facing copy for gateway 429 responses.
	MsgRateLimited = "Rate limit exceeded. Please try again later."
	// MsgUnavailable mirrors the user-facing copy for gateway 402 responses.
	MsgUnavailable = "Service unavailable. Please contact support."
	// MsgParseFailure is returned when the gateway reply is not valid JSON.
	MsgParseFailure = "Invalid response format from AI"
)

// LookupError is the classified failure returned by any stage of a lookup.
type LookupError struct {
	Class   ErrorClass
	Message string
	cause   error
}

func (e *LookupError) Error() string {
	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the classification to the wire status. Domain not-found is
// deliberately HTTP 200: callers inspect the body for an "error" key.
func (e *LookupError) HTTPStatus() int {
	switch e.Class {
	case ClassValidation:
		return http.StatusBadRequest
	case ClassNotFound:
		return http.StatusOK
	case ClassRateLimited:
		return http.StatusTooManyRequests
	case ClassUnavailable:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *LookupError {
	return &LookupError{Class: ClassValidation, Message: message}
}

func NewNotFoundError(message string) *LookupError {
	return &LookupError{Class: ClassNotFound, Message: message}
}

func NewRateLimitedError() *LookupError {
	return &LookupError{Class: ClassRateLimited, Message: MsgRateLimited}
}

func NewUnavailableError() *LookupError {
	return &LookupError{Class: ClassUnavailable, Message: MsgUnavailable}
}

func NewUpstreamError(message string, cause error) *LookupError {
	return &LookupError{Class: ClassUpstream, Message: message, cause: cause}
}

func NewParseError(cause error) *LookupError {
	return &LookupError{Class: ClassParse, Message: MsgParseFailure, cause: cause}
}

// AsLookupError extracts a classified error, wrapping anything unclassified
// as a generic upstream failure with the given fallback message.
func AsLookupError(err error, fallback string) *LookupError {
	var le *LookupError
	if errors.As(err, &le) {
		return le
	}
	return NewUpstreamError(fallback, err)
}

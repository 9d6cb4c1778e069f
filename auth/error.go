package auth

import (
	"net/http"
)

// Error is the rejection returned by extractors and validators. It carries
// the challenge of the scheme and optionally an explicit response status
// and the underlying cause.
type Error struct {
	Challenge Challenge
	Status    int
	Cause     error
}

// NewError returns an authentication error with the given challenge and cause.
func NewError(ch Challenge, cause error) *Error {
	return &Error{Challenge: ch, Cause: cause}
}

// Error returns the message of the cause.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "authentication credentials were not accepted"
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// StatusCode returns the status of the rejection response. An explicit
// status wins, then the mapping of the challenge's error code and finally
// 401 Unauthorized.
func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	if e.Challenge.Code != "" {
		return e.Challenge.Code.Status()
	}
	return http.StatusUnauthorized
}

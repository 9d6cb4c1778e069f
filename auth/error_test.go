package auth

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("no such user")
	err := NewError(Challenge{Scheme: SchemeBasic, Realm: "api"}, cause)
	assert.EqualError(t, err, "no such user")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, Challenge{Scheme: SchemeBasic, Realm: "api"}, err.Challenge)
}

func TestError_NoCause(t *testing.T) {
	err := NewError(Challenge{Scheme: SchemeBearer}, nil)
	assert.EqualError(t, err, "authentication credentials were not accepted")
	assert.NoError(t, errors.Unwrap(err))
}

func TestError_StatusCode(t *testing.T) {
	tests := map[string]struct {
		err      *Error
		expected int
	}{
		"default":       {err: &Error{}, expected: http.StatusUnauthorized},
		"explicit":      {err: &Error{Status: http.StatusForbidden}, expected: http.StatusForbidden},
		"from code":     {err: &Error{Challenge: Challenge{Code: ErrorCodeInsufficientScope}}, expected: http.StatusForbidden},
		"from code 400": {err: &Error{Challenge: Challenge{Code: ErrorCodeInvalidRequest}}, expected: http.StatusBadRequest},
		"explicit wins": {err: &Error{Status: http.StatusTeapot, Challenge: Challenge{Code: ErrorCodeInvalidRequest}}, expected: http.StatusTeapot},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.StatusCode())
		})
	}
}

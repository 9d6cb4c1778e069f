package auth

import (
	"net/http"
	"strings"
)

// ErrorCode of a Bearer challenge as defined in RFC 6750.
type ErrorCode string

const (
	// ErrorCodeInvalidRequest describes a malformed request.
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	// ErrorCodeInvalidToken describes an expired, revoked or otherwise invalid token.
	ErrorCodeInvalidToken ErrorCode = "invalid_token"
	// ErrorCodeInsufficientScope describes a token with insufficient scope.
	ErrorCodeInsufficientScope ErrorCode = "insufficient_scope"
)

// Status returns the response status code the error code maps to.
func (c ErrorCode) Status() int {
	switch c {
	case ErrorCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrorCodeInsufficientScope:
		return http.StatusForbidden
	default:
		return http.StatusUnauthorized
	}
}

// Challenge describes the WWW-Authenticate header of a rejection response.
// Empty fields are omitted from the rendering.
type Challenge struct {
	Scheme      Scheme
	Realm       string
	Code        ErrorCode
	Description string
	Scope       string
}

// IsZero returns whether the challenge is empty and nothing would be rendered.
func (c Challenge) IsZero() bool {
	return c.Scheme == ""
}

// String renders the challenge as the value of a WWW-Authenticate header.
// A challenge without parameters renders as the bare scheme.
func (c Challenge) String() string {
	if c.IsZero() {
		return ""
	}

	params := make([]string, 0, 4)
	if c.Realm != "" {
		params = append(params, quoteParam("realm", c.Realm))
	}
	if c.Code != "" {
		params = append(params, quoteParam("error", string(c.Code)))
	}
	if c.Description != "" {
		params = append(params, quoteParam("error_description", c.Description))
	}
	if c.Scope != "" {
		params = append(params, quoteParam("scope", c.Scope))
	}
	if len(params) == 0 {
		return string(c.Scheme)
	}
	return string(c.Scheme) + " " + strings.Join(params, ", ")
}

var paramEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoteParam(key, value string) string {
	return key + `="` + paramEscaper.Replace(value) + `"`
}

// ValidParam returns whether the value can be carried by a challenge
// parameter. Control characters are not allowed.
func ValidParam(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

// Package auth provides abstractions for extracting and validating
// credentials carried by the authorization header of HTTP requests.
package auth

import (
	"errors"
	"net/http"
)

const (
	// AuthorizationHeader is the request header carrying the credentials.
	AuthorizationHeader = "Authorization"
	// WWWAuthenticateHeader is the response header carrying the challenge.
	WWWAuthenticateHeader = "WWW-Authenticate"
)

var (
	// ErrMissingHeader occurs when the authorization header is absent or empty.
	ErrMissingHeader = errors.New("authorization header is missing")
	// ErrInvalidFormat occurs when the authorization header does not follow the scheme's grammar.
	ErrInvalidFormat = errors.New("authorization header format is invalid")
)

// Scheme of an authorization header as defined in RFC 7235.
type Scheme string

const (
	// SchemeBasic as defined in RFC 7617.
	SchemeBasic Scheme = "Basic"
	// SchemeBearer as defined in RFC 6750.
	SchemeBearer Scheme = "Bearer"
)

// Credentials extracted from an authorization header. The concrete types
// are Basic and Bearer, one per supported scheme. Credentials are immutable
// once extracted.
type Credentials interface {
	// Scheme returns the scheme the credentials belong to.
	Scheme() Scheme
	credentials()
}

// Basic holds the user-id and password of a Basic authorization header.
// The password is empty when the header carries none.
type Basic struct {
	Username string
	Password string
}

// Scheme returns the Basic scheme.
func (Basic) Scheme() Scheme {
	return SchemeBasic
}

// String returns a representation of the credentials with the password redacted.
func (b Basic) String() string {
	return "Basic " + b.Username + ":******"
}

func (Basic) credentials() {}

// Bearer holds the token of a Bearer authorization header.
type Bearer struct {
	Token string
}

// Scheme returns the Bearer scheme.
func (Bearer) Scheme() Scheme {
	return SchemeBearer
}

// String returns a representation of the credentials with the token redacted.
func (b Bearer) String() string {
	return "Bearer ******"
}

func (Bearer) credentials() {}

// Extractor parses the authorization header of a request into credentials.
type Extractor interface {
	// Extract returns the credentials of the request. Requests that do not
	// carry well formed credentials of the supported scheme are rejected
	// with an *Error carrying the scheme's challenge.
	Extract(r *http.Request) (Credentials, error)
	// Scheme returns the scheme the extractor supports.
	Scheme() Scheme
}

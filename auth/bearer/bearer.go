// Package bearer provides credential extraction for the Bearer token scheme
// as defined in RFC 6750.
package bearer

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beatlabs/httpauth/auth"
)

const prefix = "Bearer "

var _ auth.Extractor = &Extractor{}

// OptionFunc definition for configuring the extractor in a functional way.
type OptionFunc func(*Extractor) error

// Extractor parses Bearer authorization headers.
type Extractor struct {
	realm string
	scope string
}

// New returns a Bearer extractor with the given options applied.
func New(oo ...OptionFunc) (*Extractor, error) {
	e := &Extractor{}

	for _, option := range oo {
		err := option(e)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// WithRealm sets the realm attached to the challenge of rejected requests.
func WithRealm(realm string) OptionFunc {
	return func(e *Extractor) error {
		if !auth.ValidParam(realm) {
			return errors.New("realm contains invalid characters")
		}
		e.realm = realm
		return nil
	}
}

// WithScope sets the scope attached to the challenge of rejected requests.
func WithScope(scope string) OptionFunc {
	return func(e *Extractor) error {
		if !auth.ValidParam(scope) {
			return errors.New("scope contains invalid characters")
		}
		e.scope = scope
		return nil
	}
}

// Scheme returns the Bearer scheme.
func (e *Extractor) Scheme() auth.Scheme {
	return auth.SchemeBearer
}

// Challenge returns the challenge rejected requests are answered with.
func (e *Extractor) Challenge() auth.Challenge {
	return auth.Challenge{Scheme: auth.SchemeBearer, Realm: e.realm, Scope: e.scope}
}

// Extract parses the authorization header of the request. The scheme prefix
// is matched literally and the token is trimmed of surrounding whitespace.
// An empty token is returned as is, rejecting it is up to the validator.
func (e *Extractor) Extract(r *http.Request) (auth.Credentials, error) {
	hdr := r.Header.Get(auth.AuthorizationHeader)
	if hdr == "" {
		return nil, auth.NewError(e.Challenge(), auth.ErrMissingHeader)
	}

	if !strings.HasPrefix(hdr, prefix) {
		return nil, auth.NewError(e.Challenge(), auth.ErrInvalidFormat)
	}

	return auth.Bearer{Token: strings.TrimSpace(hdr[len(prefix):])}, nil
}

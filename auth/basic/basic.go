// Package basic provides credential extraction for the Basic authentication
// scheme as defined in RFC 7617.
package basic

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/beatlabs/httpauth/auth"
)

const prefix = "Basic "

var _ auth.Extractor = &Extractor{}

// OptionFunc definition for configuring the extractor in a functional way.
type OptionFunc func(*Extractor) error

// Extractor parses Basic authorization headers.
type Extractor struct {
	realm string
}

// New returns a Basic extractor with the given options applied.
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

// Scheme returns the Basic scheme.
func (e *Extractor) Scheme() auth.Scheme {
	return auth.SchemeBasic
}

// Challenge returns the challenge rejected requests are answered with.
func (e *Extractor) Challenge() auth.Challenge {
	return auth.Challenge{Scheme: auth.SchemeBasic, Realm: e.realm}
}

// Extract parses the authorization header of the request. The scheme prefix
// is matched case insensitively. The decoded credentials are split on the
// first colon, so the password may contain colons.
func (e *Extractor) Extract(r *http.Request) (auth.Credentials, error) {
	hdr := r.Header.Get(auth.AuthorizationHeader)
	if hdr == "" {
		return nil, auth.NewError(e.Challenge(), auth.ErrMissingHeader)
	}

	if len(hdr) < len(prefix) || !strings.EqualFold(hdr[:len(prefix)], prefix) {
		return nil, auth.NewError(e.Challenge(), auth.ErrInvalidFormat)
	}

	decoded, err := base64.StdEncoding.DecodeString(hdr[len(prefix):])
	if err != nil {
		return nil, auth.NewError(e.Challenge(), auth.ErrInvalidFormat)
	}

	creds := string(decoded)
	i := strings.IndexByte(creds, ':')
	if i < 0 {
		return nil, auth.NewError(e.Challenge(), auth.ErrInvalidFormat)
	}

	return auth.Basic{Username: creds[:i], Password: creds[i+1:]}, nil
}

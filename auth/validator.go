package auth

import (
	"errors"
	"net/http"

	errs "github.com/beatlabs/httpauth/errors"
)

// Validator decides whether extracted credentials are accepted.
// Implementations are provided by the caller and may perform blocking work,
// honoring the context of the request.
type Validator interface {
	// Validate checks the credentials of the request. On success it returns
	// the request, optionally augmented with information for the wrapped
	// handler. On rejection it returns an *Error carrying the challenge to
	// respond with. Any other error is treated as an internal failure.
	Validate(r *http.Request, creds Credentials) (*http.Request, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(r *http.Request, creds Credentials) (*http.Request, error)

// Validate calls the function itself.
func (f ValidatorFunc) Validate(r *http.Request, creds Credentials) (*http.Request, error) {
	return f(r, creds)
}

// Any returns a validator accepting credentials that any of the given
// validators accepts. Validators are tried in order and the first success
// wins. When all of them reject, the rejection carries the challenge of the
// first one and aggregates all causes. An error that is not an *Error
// aborts the chain immediately.
func Any(vv ...Validator) Validator {
	return ValidatorFunc(func(r *http.Request, creds Credentials) (*http.Request, error) {
		if len(vv) == 0 {
			return nil, errors.New("no validators provided")
		}

		var first *Error
		causes := make([]error, 0, len(vv))

		for _, v := range vv {
			vr, err := v.Validate(r, creds)
			if err == nil {
				return vr, nil
			}

			var aerr *Error
			if !errors.As(err, &aerr) {
				return nil, err
			}
			if first == nil {
				first = aerr
			}
			causes = append(causes, err)
		}

		return nil, &Error{Challenge: first.Challenge, Status: first.Status, Cause: errs.Aggregate(causes...)}
	})
}

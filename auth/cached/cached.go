// Package cached provides a validator decorator that caches successful
// validations, sparing the wrapped validator repeated lookups for the same
// credentials. Rejections and failures are never cached.
package cached

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/beatlabs/httpauth/auth"
	"github.com/beatlabs/httpauth/cache"
	"github.com/beatlabs/httpauth/log"
)

const defaultTTL = 30 * time.Second

var _ auth.Validator = &Validator{}

// OptionFunc definition for configuring the validator in a functional way.
type OptionFunc func(*Validator) error

// Validator decorates another validator with caching of successful
// validations.
type Validator struct {
	val   auth.Validator
	store cache.TTLCache
	ttl   time.Duration
}

// New returns a caching validator wrapping the given one, storing outcomes
// in the given store.
func New(val auth.Validator, store cache.TTLCache, oo ...OptionFunc) (*Validator, error) {
	if val == nil {
		return nil, errors.New("validator is nil")
	}
	if store == nil {
		return nil, errors.New("store is nil")
	}

	v := &Validator{val: val, store: store, ttl: defaultTTL}

	for _, option := range oo {
		err := option(v)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// WithTTL sets how long cached validations stay valid.
func WithTTL(ttl time.Duration) OptionFunc {
	return func(v *Validator) error {
		if ttl <= 0 {
			return errors.New("ttl should be a positive duration")
		}
		v.ttl = ttl
		return nil
	}
}

// Validate checks the store for an earlier successful validation of the
// same credentials before delegating to the wrapped validator. On a hit the
// request is forwarded unchanged, so validators that attach per request
// information should not be wrapped. Store failures degrade to calling the
// wrapped validator directly.
func (v *Validator) Validate(r *http.Request, creds auth.Credentials) (*http.Request, error) {
	k := key(creds)

	_, ok, err := v.store.Get(r.Context(), k)
	if err != nil {
		log.FromContext(r.Context()).Warnf("failed to get cached validation: %v", err)
	}
	if ok {
		return r, nil
	}

	vr, err := v.val.Validate(r, creds)
	if err != nil {
		return nil, err
	}

	err = v.store.SetTTL(r.Context(), k, time.Now().UTC().Format(time.RFC3339), v.ttl)
	if err != nil {
		log.FromContext(r.Context()).Warnf("failed to cache validation: %v", err)
	}

	return vr, nil
}

// Invalidate drops the cached validation of the given credentials.
func (v *Validator) Invalidate(ctx context.Context, creds auth.Credentials) error {
	return v.store.Remove(ctx, key(creds))
}

// Flush drops all cached validations.
func (v *Validator) Flush(ctx context.Context) error {
	return v.store.Purge(ctx)
}

// key derives the cache key from the credentials. Raw secrets never reach
// the store, the key is a SHA-256 digest over the scheme and the fields.
func key(creds auth.Credentials) string {
	h := sha256.New()
	h.Write([]byte(creds.Scheme()))
	h.Write([]byte{0})
	switch c := creds.(type) {
	case auth.Basic:
		h.Write([]byte(c.Username))
		h.Write([]byte{0})
		h.Write([]byte(c.Password))
	case auth.Bearer:
		h.Write([]byte(c.Token))
	}
	return hex.EncodeToString(h.Sum(nil))
}

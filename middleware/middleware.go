// Package middleware provides chainable HTTP middlewares with
// authentication at the core, next to recovery and rate limiting.
package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/beatlabs/httpauth/correlation"
	"github.com/beatlabs/httpauth/log"
)

// Func type declaration of middleware func.
type Func func(next http.Handler) http.Handler

// Chain chains middlewares to a handler func.
func Chain(f http.Handler, mm ...Func) http.Handler {
	for i := len(mm) - 1; i >= 0; i-- {
		f = mm[i](f)
	}
	return f
}

// NewObservability injects a correlation ID and a correlated logger into
// the request context unless one is already present.
func NewObservability() Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			corID := correlation.GetOrSetHeaderID(r.Header)
			ctx := correlation.ContextWithID(r.Context(), corID)
			logger := log.Sub(map[string]interface{}{correlation.ID: corID})
			ctx = log.WithContext(ctx, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewRecovery creates a Func that ensures recovery and no panic.
func NewRecovery() Func {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					var err error
					switch x := p.(type) {
					case string:
						err = errors.New(x)
					case error:
						err = x
					default:
						err = errors.New("unknown panic")
					}
					log.FromContext(r.Context()).Errorf("recovering from a panic: %v: %s", err, string(debug.Stack()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/beatlabs/httpauth/auth"
	"github.com/beatlabs/httpauth/auth/basic"
	"github.com/beatlabs/httpauth/auth/bearer"
	"github.com/beatlabs/httpauth/correlation"
	"github.com/beatlabs/httpauth/log"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	authComponent = "httpauth"
	authOpName    = "authenticate"
)

type config struct {
	limiter    *rate.Limiter
	concurrent bool
}

// OptionFunc definition for configuring the authentication middleware in a
// functional way.
type OptionFunc func(*config) error

// WithRateLimiting adds a rate limit gate ahead of credential extraction.
// Throttled requests are answered with 429 without invoking the extractor
// or the validator.
func WithRateLimiting(limit float64, burst int) OptionFunc {
	return func(cfg *config) error {
		if limit < 0 {
			return errors.New("invalid limit")
		}
		if burst < 0 {
			return errors.New("invalid burst")
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(limit), burst)
		return nil
	}
}

// WithConcurrentDispatch disables the serialization of calls into the
// wrapped handler, allowing authenticated requests to reach it
// concurrently. The handler must manage its own synchronization.
func WithConcurrentDispatch() OptionFunc {
	return func(cfg *config) error {
		cfg.concurrent = true
		return nil
	}
}

// NewAuthentication creates a Func that authenticates requests before they
// reach the wrapped handler. Credentials are extracted with the given
// extractor and checked by the given validator. Requests failing either
// stage are answered with the scheme's WWW-Authenticate challenge and never
// reach the handler.
//
// Each wrapped handler admits one request at a time: concurrent requests
// wait in arrival order and a cancelled request gives up its place without
// blocking the ones behind it. Use WithConcurrentDispatch to lift the
// serialization for handlers that manage their own synchronization.
func NewAuthentication(extractor auth.Extractor, validator auth.Validator, oo ...OptionFunc) (Func, error) {
	if extractor == nil {
		return nil, errors.New("extractor is nil")
	}
	if validator == nil {
		return nil, errors.New("validator is nil")
	}

	cfg := &config{}
	for _, option := range oo {
		err := option(cfg)
		if err != nil {
			return nil, err
		}
	}

	authMetricsInit.Do(initAuthMetrics)

	scheme := strings.ToLower(string(extractor.Scheme()))

	return func(next http.Handler) http.Handler {
		var sem *semaphore.Weighted
		if !cfg.concurrent {
			sem = semaphore.NewWeighted(1)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.limiter != nil && !cfg.limiter.Allow() {
				log.FromContext(r.Context()).Debug("Limiting requests...")
				authHandledMetric.WithLabelValues(scheme, outcomeThrottled).Inc()
				http.Error(w, "Requests greater than limit", http.StatusTooManyRequests)
				return
			}

			sp, r := startAuthSpan(r, scheme)

			creds, err := extractor.Extract(r)
			if err != nil {
				finishAuthSpan(sp, statusOf(err))
				authHandledMetric.WithLabelValues(scheme, outcomeOf(err)).Inc()
				reject(w, r, scheme, err)
				return
			}

			started := time.Now()
			vr, err := validator.Validate(r, creds)
			authLatencyMetric.WithLabelValues(scheme).Observe(time.Since(started).Seconds())
			if err != nil {
				finishAuthSpan(sp, statusOf(err))
				authHandledMetric.WithLabelValues(scheme, outcomeOf(err)).Inc()
				reject(w, r, scheme, err)
				return
			}
			if vr != nil {
				r = vr
			}

			finishAuthSpan(sp, http.StatusOK)
			authHandledMetric.WithLabelValues(scheme, outcomeAuthenticated).Inc()

			if sem != nil {
				if err := sem.Acquire(r.Context(), 1); err != nil {
					http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
					return
				}
				defer sem.Release(1)
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// NewBasicAuthentication creates an authentication Func for the Basic scheme.
func NewBasicAuthentication(validator auth.Validator, oo ...OptionFunc) (Func, error) {
	extractor, err := basic.New()
	if err != nil {
		return nil, err
	}
	return NewAuthentication(extractor, validator, oo...)
}

// NewBearerAuthentication creates an authentication Func for the Bearer scheme.
func NewBearerAuthentication(validator auth.Validator, oo ...OptionFunc) (Func, error) {
	extractor, err := bearer.New()
	if err != nil {
		return nil, err
	}
	return NewAuthentication(extractor, validator, oo...)
}

func reject(w http.ResponseWriter, r *http.Request, scheme string, err error) {
	var aerr *auth.Error
	if !errors.As(err, &aerr) {
		log.FromContext(r.Context()).Errorf("authentication failed: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if ch := aerr.Challenge; !ch.IsZero() {
		w.Header().Set(auth.WWWAuthenticateHeader, ch.String())
	}

	status := aerr.StatusCode()
	logRejection(r, scheme, status, aerr)
	http.Error(w, http.StatusText(status), status)
}

func logRejection(r *http.Request, scheme string, status int, err error) {
	if !log.Enabled(log.DebugLevel) {
		return
	}

	info := map[string]interface{}{
		correlation.ID: correlation.GetOrSetHeaderID(r.Header),
		"scheme":       scheme,
		"status":       status,
	}
	log.FromContext(r.Context()).Sub(info).Debugf("authentication rejected: %v", err)
}

func statusOf(err error) int {
	var aerr *auth.Error
	if errors.As(err, &aerr) {
		return aerr.StatusCode()
	}
	return http.StatusInternalServerError
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingHeader):
		return outcomeMissingHeader
	case errors.Is(err, auth.ErrInvalidFormat):
		return outcomeInvalidFormat
	}

	var aerr *auth.Error
	if errors.As(err, &aerr) {
		return outcomeRejected
	}
	return outcomeError
}

func startAuthSpan(r *http.Request, scheme string) (opentracing.Span, *http.Request) {
	sp, ctx := opentracing.StartSpanFromContext(r.Context(), authOpName)
	ext.Component.Set(sp, authComponent)
	sp.SetTag("auth.scheme", scheme)
	return sp, r.WithContext(ctx)
}

func finishAuthSpan(sp opentracing.Span, code int) {
	ext.HTTPStatusCode.Set(sp, uint16(code))
	ext.Error.Set(sp, code >= http.StatusInternalServerError)
	sp.Finish()
}

/*
Package httpauth provides authentication middleware for HTTP handlers.

The module splits authentication into two pluggable pieces. An extractor
parses the Authorization header of the incoming request into typed
credentials, supporting the Basic (RFC 7617) and Bearer (RFC 6750) schemes.
A validator, supplied by the caller, decides whether the extracted
credentials are acceptable and may attach information to the request before
it is forwarded.

The middleware package combines the two: it extracts, validates and either
forwards the request to the wrapped handler or rejects it with a
WWW-Authenticate challenge. Each wrapped handler admits at most one request
at a time by default, so validators and handlers that are not safe for
concurrent use can be wrapped without extra locking.

The package provides abstractions for the following functionality:

  - credential extraction for the Basic and Bearer schemes
  - caller supplied validation with combinators and caching decorators
  - authentication middleware with metrics, tracing and rate limiting
  - challenge rendering for rejected requests

httpauth sets up by default logging with zerolog, tracing with opentracing
and metrics with prometheus.
*/
package httpauth

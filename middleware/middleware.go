// Package middleware provides transport middleware for generated
// clients. A Middleware wraps an http.RoundTripper; Chain composes
// several of them around a base transport, outermost first.
package middleware

import "net/http"

// Middleware wraps an http.RoundTripper with extra behavior.
type Middleware func(next http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// RoundTripperFunc adapts a function to an http.RoundTripper.
func RoundTripperFunc(f func(*http.Request) (*http.Response, error)) http.RoundTripper {
	return roundTripperFunc(f)
}

// Chain wraps base with the given middleware. The first middleware is
// the outermost: it sees the request first and the response last.
func Chain(base http.RoundTripper, mw ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(mw) - 1; i >= 0; i-- {
		rt = mw[i](rt)
	}
	return rt
}

package middleware

import "net/http"

// BearerAuth returns middleware that sets a bearer token on every
// request. An empty token fails the request instead of sending an
// unauthenticated call.
func BearerAuth(token string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if token == "" {
				return nil, errorf("auth", "bearer token is empty")
			}
			r = r.Clone(r.Context())
			r.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(r)
		})
	}
}

// BasicAuth returns middleware that sets HTTP basic credentials on
// every request.
func BasicAuth(username, password string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())
			r.SetBasicAuth(username, password)
			return next.RoundTrip(r)
		})
	}
}

// APIKeyHeader returns middleware that sets an API key header on
// every request.
func APIKeyHeader(name, key string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if key == "" {
				return nil, errorf("auth", "API key %s is empty", name)
			}
			r = r.Clone(r.Context())
			r.Header.Set(name, key)
			return next.RoundTrip(r)
		})
	}
}

// APIKeyQuery returns middleware that appends an API key query
// parameter to every request URL.
func APIKeyQuery(name, key string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if key == "" {
				return nil, errorf("auth", "API key %s is empty", name)
			}
			r = r.Clone(r.Context())
			q := r.URL.Query()
			q.Set(name, key)
			r.URL.RawQuery = q.Encode()
			return next.RoundTrip(r)
		})
	}
}

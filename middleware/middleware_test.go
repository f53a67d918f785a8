package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testSpec = `
openapi: "3.0.0"
info:
  title: Test API
  version: "1.0"
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: limit
          in: query
          required: true
          schema:
            type: integer
      responses:
        "200":
          description: OK
`

func TestChainOrder(t *testing.T) {
	var calls []string

	tag := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
				calls = append(calls, name)
				return next.RoundTrip(r)
			})
		}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: Chain(http.DefaultTransport, tag("outer"), tag("inner"))}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if len(calls) != 2 || calls[0] != "outer" || calls[1] != "inner" {
		t.Errorf("expected [outer inner], got %v", calls)
	}
}

func TestChainNilBase(t *testing.T) {
	rt := Chain(nil)
	if rt != http.DefaultTransport {
		t.Error("nil base should fall back to http.DefaultTransport")
	}
}

func TestBearerAuth(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := &http.Client{Transport: Chain(http.DefaultTransport, BearerAuth("s3cret"))}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got != "Bearer s3cret" {
		t.Errorf("expected bearer header, got %q", got)
	}
}

func TestBearerAuthEmptyToken(t *testing.T) {
	client := &http.Client{Transport: Chain(http.DefaultTransport, BearerAuth(""))}
	_, err := client.Get("http://127.0.0.1:0/never")
	if err == nil {
		t.Fatal("expected error for empty token")
	}

	var mwErr *Error
	if !errors.As(err, &mwErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if mwErr.Op != "auth" {
		t.Errorf("expected op auth, got %q", mwErr.Op)
	}
}

func TestAPIKeyQuery(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("api_key")
	}))
	defer srv.Close()

	client := &http.Client{Transport: Chain(http.DefaultTransport, APIKeyQuery("api_key", "k123"))}
	resp, err := client.Get(srv.URL + "?limit=1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got != "k123" {
		t.Errorf("expected api key in query, got %q", got)
	}
}

func TestValidateRejectsInvalidRequest(t *testing.T) {
	mw, err := Validate([]byte(testSpec))
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid request reached the server")
	}))
	defer srv.Close()

	client := &http.Client{Transport: Chain(http.DefaultTransport, mw)}
	_, err = client.Get(srv.URL + "/pets")
	if err == nil {
		t.Fatal("expected validation failure for missing required query parameter")
	}

	var mwErr *Error
	if !errors.As(err, &mwErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(valErr.Errors) == 0 {
		t.Error("expected at least one validator finding")
	}
}

func TestValidatePassesValidRequest(t *testing.T) {
	mw, err := Validate([]byte(testSpec))
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: Chain(http.DefaultTransport, mw)}
	resp, err := client.Get(srv.URL + "/pets?limit=5")
	if err != nil {
		t.Fatalf("valid request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

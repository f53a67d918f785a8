package middleware

import (
	"net/http"
	"strings"

	"github.com/pb33f/libopenapi"
	validator "github.com/pb33f/libopenapi-validator"
	verrors "github.com/pb33f/libopenapi-validator/errors"
)

// ValidationError aggregates the validator findings for one request.
type ValidationError struct {
	Errors []*verrors.ValidationError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate returns middleware that checks every outgoing request
// against the given OpenAPI spec before it reaches the transport.
// Invalid requests never leave the client; they fail with an *Error
// wrapping a *ValidationError.
func Validate(spec []byte) (Middleware, error) {
	doc, err := libopenapi.NewDocument(spec)
	if err != nil {
		return nil, err
	}

	v, errs := validator.NewValidator(doc)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			valid, findings := v.ValidateHttpRequestSync(r)
			if !valid {
				return nil, &Error{Op: "validate", Err: &ValidationError{Errors: findings}}
			}
			return next.RoundTrip(r)
		})
	}, nil
}

package engine

import "fmt"

// ErrorTaxonomy returns the closed set of error kinds the generated
// client raises. The middleware kind is present only when the
// middleware-enabled configuration is active; this is decided once per
// client model, not per call.
func ErrorTaxonomy(middleware bool) []ErrorKind {
	kinds := []ErrorKind{ErrorTransport, ErrorSerialization, ErrorAPI}
	if middleware {
		kinds = append(kinds, ErrorMiddleware)
	}
	return kinds
}

// APIError carries a numeric status and a textual message, mirroring
// the API error kind of the generated taxonomy. The engine uses it for
// client-construction-time failures such as an unparseable URL.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

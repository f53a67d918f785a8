package middleware

import "fmt"

// Error marks a failure produced by a middleware rather than by the
// network or the server. Generated clients unwrap transport errors
// with errors.As to tell the two apart.
type Error struct {
	// Op names the middleware that failed, e.g. "validate" or "auth".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("middleware %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(op, format string, args ...any) *Error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}

// Package apperr defines the error type used across chime.
package apperr

import "fmt"

// Error is an application error with an optional wrapped cause.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same message so that wrapped copies compare
// equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.Message == t.Message
}

// Wrap returns a copy of the error with the given cause attached.
func (e *Error) Wrap(err error) *Error {
	return &Error{Message: e.Message, Err: err}
}

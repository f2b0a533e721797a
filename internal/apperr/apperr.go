// Package apperr defines user-facing application errors
package apperr

import "fmt"

// Error is an application error whose message may be a format template.
// Errors derived from a template through Fmt or Wrap still match the template
// with errors.Is.
type Error struct {
	Cause    error
	template *Error
	Message  string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the template this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.template != nil {
		return e.template
	}

	return e
}

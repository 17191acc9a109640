// Package flaterrors joins errors into a single flat list.
//
// Unlike errors.Join, nested joined errors are unwrapped so that the result is
// always one level deep, and the message reads as a single line.
package flaterrors

import "strings"

// Join returns an error wrapping every non-nil error in errs.
// Errors that themselves wrap a list of errors are flattened into the result.
// Join returns nil if every value in errs is nil.
func Join(errs ...error) error {
	flat := flatten(make([]error, 0, len(errs)), errs)
	if len(flat) == 0 {
		return nil
	}

	return &joinError{errs: flat}
}

func flatten(out, errs []error) []error {
	for _, err := range errs {
		if err == nil {
			continue
		}

		if multi, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // unwrapping one level only
			out = flatten(out, multi.Unwrap())
			continue
		}

		out = append(out, err)
	}

	return out
}

type joinError struct {
	errs []error
}

func (e *joinError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}

	return strings.Join(msgs, ": ")
}

func (e *joinError) Unwrap() []error {
	return e.errs
}

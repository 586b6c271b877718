package cmd

import (
	"errors"
	"fmt"
)

// ErrMissingTo is returned when no --to flag is given.
var ErrMissingTo = errors.New("required option --to is missing")

// HeaderFormatError is returned when a --header value is not of the form
// "Name: value".
type HeaderFormatError struct {
	Value string
}

// Error implements error.
func (e *HeaderFormatError) Error() string {
	return fmt.Sprintf("invalid header format: %s", e.Value)
}

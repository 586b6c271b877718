package message

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by Build when it is given a nil Request.
	ErrInvalidInput = errors.New("message request expected, got nil")

	// ErrMissingRecipient is returned by Build when the To field is empty after
	// the header has been assembled. No message is produced.
	ErrMissingRecipient = errors.New("missing To e-mail address")

	// ErrUnsupportedPayload is wrapped by the Diagnostic recorded for an
	// attachment whose data could not be turned into bytes. The attachment is
	// left out of the message, but generation continues.
	ErrUnsupportedPayload = errors.New("attachment data is not text or binary")
)

// Diagnostic describes a problem that did not stop the message from being
// generated.
type Diagnostic struct {
	// Index is the 0-based position of the attachment in Request.Attachments.
	Index int

	// Filename is the name the attachment would have been given.
	Filename string

	// Err describes the problem. It wraps ErrUnsupportedPayload.
	Err error
}

// Error implements error so a Diagnostic can be logged or returned as one.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("attachment %d (%s): %v, skipping", d.Index, d.Filename, d.Err)
}

// Unwrap returns the underlying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// wrapUnsupported makes sure err can be matched against ErrUnsupportedPayload.
func wrapUnsupported(err error) error {
	if errors.Is(err, ErrUnsupportedPayload) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
}

package message

import (
	"github.com/zostay/go-eml/addr"
	"github.com/zostay/go-eml/message/header"
)

// Payload is the content of an attachment. Text and Binary cover the usual
// cases. Any other implementation is accepted, but if its Bytes method fails,
// the attachment is skipped with a Diagnostic.
type Payload interface {
	// Bytes returns the raw bytes to be base64 encoded.
	Bytes() ([]byte, error)

	// IsEmpty returns true if there is no data. Empty payloads are skipped
	// without a Diagnostic.
	IsEmpty() bool
}

// Text is an attachment payload given as a string. It is encoded as UTF-8.
type Text string

// Bytes returns the UTF-8 bytes of the text.
func (t Text) Bytes() ([]byte, error) {
	return []byte(t), nil
}

// IsEmpty returns true for the empty string.
func (t Text) IsEmpty() bool {
	return t == ""
}

// Binary is an attachment payload given as bytes, which are encoded directly.
type Binary []byte

// Bytes returns the payload unchanged.
func (b Binary) Bytes() ([]byte, error) {
	return b, nil
}

// IsEmpty returns true only for a nil slice. A non-nil, zero-length slice is
// an attachment with no content and is still included in the message.
func (b Binary) IsEmpty() bool {
	return b == nil
}

// Attachment is a file to attach to the message.
type Attachment struct {
	// Filename is used in the Content-Disposition field.
	Filename string

	// Name is used in place of Filename when Filename is empty. If both are
	// empty, the attachment is named attachment_N, where N is its 1-based
	// position in the list of attachments.
	Name string

	// ContentType defaults to application/octet-stream.
	ContentType string

	// Inline selects the inline presentation rather than attachment.
	Inline bool

	// ContentID, if set, is written as a Content-ID field so the part can be
	// referenced from an HTML body as cid:ContentID.
	ContentID string

	// Data holds the content. An attachment with a nil or empty Data is left
	// out of the message.
	Data Payload
}

// Request describes the message to generate. Only To is required.
type Request struct {
	// Headers are extra fields to put in the message header. The fields set
	// from Subject, From, To and Cc replace any field of the same name here.
	// A Content-Type field may be given to choose the multipart type or the
	// boundary. Message-ID and MIME-Version are only added if missing.
	Headers header.Header

	// Subject sets the Subject field when not nil, even if it points to an
	// empty string. See String.
	Subject *string

	// From, To and Cc set the matching fields when not empty.
	From addr.List
	To   addr.List
	Cc   addr.List

	// Text and HTML are the message bodies. An empty string means there is no
	// such body.
	Text string
	HTML string

	Attachments []Attachment
}

// String is a helper for setting Request.Subject.
func String(s string) *string {
	return &s
}

// SetSubject sets the Subject of the request.
func (r *Request) SetSubject(s string) {
	r.Subject = &s
}

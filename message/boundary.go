package message

import (
	"github.com/zostay/go-eml/message/header/param"
)

const (
	// DefaultMultipartContentType is the Content-Type used when the request
	// does not set one.
	DefaultMultipartContentType = "multipart/mixed"

	// BoundaryPrefix starts every generated boundary.
	BoundaryPrefix = "----="
)

// Boundary is the multipart boundary in effect for a message along with the
// Content-Type field body that declares it.
type Boundary struct {
	Token       string
	ContentType string
}

// GenerateBoundary returns a new boundary token using the given IDGenerator.
func GenerateBoundary(ids IDGenerator) string {
	return BoundaryPrefix + ids.NewID()
}

// ResolveBoundary decides the boundary for a message. The contentType and found
// arguments are the existing Content-Type field body and whether there was one.
//
// An existing boundary parameter is reused as-is. An existing Content-Type
// without one gets a generated boundary appended. If there is no Content-Type,
// multipart/mixed with a generated boundary is used, no matter what parts the
// message will have.
func ResolveBoundary(contentType string, found bool, ids IDGenerator) Boundary {
	if found {
		if b, ok := param.GetBoundary(contentType); ok {
			return Boundary{Token: b, ContentType: contentType}
		}
	} else {
		contentType = DefaultMultipartContentType
	}

	token := GenerateBoundary(ids)
	return Boundary{
		Token:       token,
		ContentType: param.Append(contentType, param.Boundary, token),
	}
}

// Delimiter returns the line that opens each part.
func (b Boundary) Delimiter() string {
	return "--" + b.Token + "\r\n"
}

// Close returns the line that ends the multipart body.
func (b Boundary) Close() string {
	return "--" + b.Token + "--\r\n"
}

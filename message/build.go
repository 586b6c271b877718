package message

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/param"
	"github.com/zostay/go-eml/message/transfer"
)

const (
	// DefaultAttachmentContentType is used for attachments without a
	// ContentType.
	DefaultAttachmentContentType = "application/octet-stream"

	textPlainUTF8 = "text/plain; charset=utf-8"
	textHTMLUTF8  = "text/html; charset=utf-8"
)

// Result is a generated message.
type Result struct {
	// Message is the complete document, using CRLF line breaks throughout.
	Message string

	// Boundary is the multipart boundary token used in Message.
	Boundary string

	// Diagnostics lists the attachments that were left out and why.
	Diagnostics []Diagnostic
}

// Builder generates messages. It holds no state between calls and may be
// shared between goroutines.
type Builder struct {
	ids    IDGenerator
	logger *slog.Logger
}

// NewBuilder returns a Builder configured with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		ids:    RandomID,
		logger: slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates a message with a Builder configured with opts.
func Build(req *Request, opts ...Option) (*Result, error) {
	return NewBuilder(opts...).Build(req)
}

// Generate is like Build, but returns only the message text.
func Generate(req *Request, opts ...Option) (string, error) {
	res, err := Build(req, opts...)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// Build generates the message described by req. The document is made of the
// header, then a part for the text body, a part for the HTML body and a part
// for each attachment (each only when present), then the closing boundary.
//
// It returns ErrInvalidInput if req is nil and ErrMissingRecipient if there
// is no To address. Attachments that cannot be encoded are skipped and listed
// in Result.Diagnostics.
func (b *Builder) Build(req *Request) (*Result, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	h, bound, err := AssembleHeader(req, b.ids)
	if err != nil {
		return nil, err
	}

	res := &Result{Boundary: bound.Token}

	var sb strings.Builder
	_, _ = h.WriteTo(&sb)

	if req.Text != "" {
		writeTextPart(&sb, bound, textPlainUTF8, req.Text)
	}

	if req.HTML != "" {
		writeTextPart(&sb, bound, textHTMLUTF8, req.HTML)
	}

	for i, a := range req.Attachments {
		if a.Data == nil || a.Data.IsEmpty() {
			continue
		}

		filename := attachmentFilename(a, i)
		data, err := a.Data.Bytes()
		if err != nil {
			d := Diagnostic{
				Index:    i,
				Filename: filename,
				Err:      wrapUnsupported(err),
			}
			b.logger.Warn("skipping attachment",
				"index", i,
				"filename", filename,
				"error", d.Err)
			res.Diagnostics = append(res.Diagnostics, d)
			continue
		}

		writeAttachmentPart(&sb, bound, a, filename, data)
	}

	sb.WriteString(bound.Close())

	res.Message = sb.String()
	return res, nil
}

// writeTextPart writes a quoted-printable body part.
func writeTextPart(sb *strings.Builder, bound Boundary, ct, body string) {
	ph := &header.Header{}
	ph.Set(header.ContentType, ct)
	ph.Set(header.ContentTransferEncoding, transfer.QuotedPrintable)

	writePart(sb, bound, ph, []byte(body))
}

// writeAttachmentPart writes a base64 attachment part.
func writeAttachmentPart(
	sb *strings.Builder,
	bound Boundary,
	a Attachment,
	filename string,
	data []byte,
) {
	ct := a.ContentType
	if ct == "" {
		ct = DefaultAttachmentContentType
	}

	presentation := param.Attachment
	if a.Inline {
		presentation = param.Inline
	}

	ph := &header.Header{}
	ph.Set(header.ContentType, ct)
	ph.Set(header.ContentTransferEncoding, transfer.Base64)
	if a.ContentID != "" {
		ph.Set(header.ContentID, "<"+a.ContentID+">")
	}
	ph.Set(header.ContentDisposition, param.Disposition(presentation, filename))

	writePart(sb, bound, ph, data)
}

// writePart writes the delimiter, the part header and the body, encoded as
// named by the Content-Transfer-Encoding field of ph.
func writePart(sb *strings.Builder, bound Boundary, ph *header.Header, body []byte) {
	sb.WriteString(bound.Delimiter())
	_, _ = ph.WriteTo(sb)

	tw := transfer.ApplyHeaderTransferEncoding(ph, sb)
	_, _ = tw.Write(body)
	_ = tw.Close()

	sb.WriteString(header.CRLF + header.CRLF)
}

// attachmentFilename picks the name to give the attachment at index i.
func attachmentFilename(a Attachment, i int) string {
	switch {
	case a.Filename != "":
		return a.Filename
	case a.Name != "":
		return a.Name
	}
	return "attachment_" + strconv.Itoa(i+1)
}

package transfer

import (
	"io"

	"github.com/zostay/go-eml/message/header"
)

const (
	QuotedPrintable = "quoted-printable" // text bodies
	Base64          = "base64"           // attachments
)

// DefaultLineLength is the longest line written by the base64 encoder.
const DefaultLineLength = 76

// writer is an internal helper to pair a writer with the closer that must be
// called to flush it.
type writer struct {
	io.Writer
	io.Closer
}

// Close will close the nested closer, if any.
func (w *writer) Close() error {
	if w.Closer != nil {
		return w.Closer.Close()
	}
	return nil
}

// Encoders maps each supported Content-Transfer-Encoding to a constructor for
// its encoder.
var Encoders = map[string]func(io.Writer) io.WriteCloser{
	QuotedPrintable: NewQuotedPrintableEncoder,
	Base64:          NewBase64Encoder,
}

// ApplyTransferEncoding returns an encoder for the given Content-Transfer-Encoding
// that writes to w. Unknown encodings pass bytes through as-is. The returned
// io.WriteCloser must be closed when writing is finished.
func ApplyTransferEncoding(cte string, w io.Writer) io.WriteCloser {
	if enc, ok := Encoders[cte]; ok {
		return enc(w)
	}
	return &writer{w, nil}
}

// ApplyHeaderTransferEncoding is like ApplyTransferEncoding, but reads the
// encoding from the Content-Transfer-Encoding field of h.
func ApplyHeaderTransferEncoding(h *header.Header, w io.Writer) io.WriteCloser {
	cte, err := h.Get(header.ContentTransferEncoding)
	if err != nil {
		return &writer{w, nil}
	}
	return ApplyTransferEncoding(cte, w)
}

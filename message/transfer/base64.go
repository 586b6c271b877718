package transfer

import (
	"encoding/base64"
	"io"

	"github.com/zostay/go-eml/message/header"
)

// LineWrapper breaks the bytes written through it into lines of a fixed
// length. A line break is written only when more bytes follow a full line, so
// the output never ends with a line break and empty input produces nothing.
type LineWrapper struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

// NewLineWrapper returns a LineWrapper writing to w that inserts lbr after
// every n bytes. If n is less than 1, bytes are passed through unwrapped.
func NewLineWrapper(w io.Writer, n int, lbr string) *LineWrapper {
	return &LineWrapper{every: n, lbr: []byte(lbr), w: w}
}

// Write implements io.Writer.
func (lw *LineWrapper) Write(b []byte) (int, error) {
	if lw.every < 1 {
		return lw.w.Write(b)
	}

	n := 0
	for len(b) > 0 {
		if lw.acc == lw.every {
			if _, err := lw.w.Write(lw.lbr); err != nil {
				return n, err
			}
			lw.acc = 0
		}

		chunk := lw.every - lw.acc
		if chunk > len(b) {
			chunk = len(b)
		}

		wn, err := lw.w.Write(b[:chunk])
		n += wn
		lw.acc += wn
		if err != nil {
			return n, err
		}

		b = b[chunk:]
	}

	return n, nil
}

// NewBase64Encoder returns an io.WriteCloser that base64 encodes everything
// written to it and writes the result to w in lines of DefaultLineLength
// separated by CRLF. Close must be called to flush the final padded block.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	enc := base64.NewEncoder(base64.StdEncoding,
		NewLineWrapper(w, DefaultLineLength, header.CRLF))
	return &writer{enc, enc}
}

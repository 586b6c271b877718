package transfer

import "io"

const upperHex = "0123456789ABCDEF"

type qpWriter struct {
	w io.Writer
}

// Write escapes "=" and every byte from 0x80 to 0xFF as =HH and passes
// everything else through. The count returned is of input bytes consumed.
func (qw *qpWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p))
	for _, c := range p {
		if c == '=' || c >= 0x80 {
			out = append(out, '=', upperHex[c>>4], upperHex[c&0x0f])
			continue
		}
		out = append(out, c)
	}

	if _, err := qw.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewQuotedPrintableEncoder returns an io.WriteCloser that writes the
// quoted-printable form of everything written to it to w.
func NewQuotedPrintableEncoder(w io.Writer) io.WriteCloser {
	return &writer{&qpWriter{w}, nil}
}

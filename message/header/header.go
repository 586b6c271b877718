package header

import (
	"errors"
	"io"
	"strings"
)

// CRLF is the line break used throughout a generated message.
const CRLF = "\r\n"

// Errors returned by various header methods.
var (
	// ErrNoSuchField is returned by Header methods when the operation being
	// performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Get when the named field has more than one
	// value.
	ErrManyFields = errors.New("many header fields found")
)

// These are the names of the header fields the generator sets itself.
const (
	Cc                      = "Cc"
	ContentDisposition      = "Content-Disposition"
	ContentID               = "Content-ID"
	ContentTransferEncoding = "Content-Transfer-Encoding"
	ContentType             = "Content-Type"
	Date                    = "Date"
	From                    = "From"
	MessageID               = "Message-ID"
	MIMEVersion             = "MIME-Version"
	Subject                 = "Subject"
	To                      = "To"
)

// Field is a single named header entry. A Field with more than one value is
// written once per value. A Field with no values is not written at all.
type Field struct {
	Name   string
	Values []string
}

// Header is an ordered collection of fields. The zero value is an empty header
// ready to use.
type Header struct {
	fields []*Field
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	c := &Header{fields: make([]*Field, len(h.fields))}
	for i, f := range h.fields {
		vs := make([]string, len(f.Values))
		copy(vs, f.Values)
		c.fields[i] = &Field{Name: f.Name, Values: vs}
	}
	return c
}

// Len returns the number of fields in the header, including fields without
// values.
func (h *Header) Len() int {
	return len(h.fields)
}

// Fields returns a copy of the list of fields in order.
func (h *Header) Fields() []Field {
	fs := make([]Field, len(h.fields))
	for i, f := range h.fields {
		fs[i] = *f
	}
	return fs
}

// index returns the position of the first field matching name, ignoring case,
// or -1.
func (h *Header) index(name string) int {
	for i, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			return i
		}
	}
	return -1
}

// Lookup returns the name (with its original casing) and values of the first
// field matching name without regard to case. The last value is false if no
// such field exists.
func (h *Header) Lookup(name string) (string, []string, bool) {
	i := h.index(name)
	if i < 0 {
		return "", nil, false
	}
	return h.fields[i].Name, h.fields[i].Values, true
}

// Has returns true if a field with the given name exists.
func (h *Header) Has(name string) bool {
	return h.index(name) >= 0
}

// Get returns the first value of the named field. It returns ErrNoSuchField if
// the field is missing or has no values and ErrManyFields (along with the first
// value) if it has more than one.
func (h *Header) Get(name string) (string, error) {
	_, vs, found := h.Lookup(name)
	if !found || len(vs) == 0 {
		return "", ErrNoSuchField
	}
	if len(vs) > 1 {
		return vs[0], ErrManyFields
	}
	return vs[0], nil
}

// Set replaces the values of the named field. If a field with that name already
// exists (ignoring case), it keeps its position and its name as originally
// written. Otherwise, a new field is appended. Calling Set with no values
// leaves a field that is skipped on output.
func (h *Header) Set(name string, values ...string) {
	vs := make([]string, len(values))
	copy(vs, values)

	if i := h.index(name); i >= 0 {
		h.fields[i].Values = vs
		return
	}

	h.fields = append(h.fields, &Field{Name: name, Values: vs})
}

// Add appends more values to the named field, creating it at the end of the
// header if it does not exist yet.
func (h *Header) Add(name string, values ...string) {
	if i := h.index(name); i >= 0 {
		h.fields[i].Values = append(h.fields[i].Values, values...)
		return
	}
	h.Set(name, values...)
}

// Delete removes every field matching the name.
func (h *Header) Delete(name string) {
	kept := h.fields[:0]
	for _, f := range h.fields {
		if !strings.EqualFold(f.Name, name) {
			kept = append(kept, f)
		}
	}
	h.fields = kept
}

// Bytes returns the header as a slice of bytes, including the blank line that
// terminates it.
func (h *Header) Bytes() []byte {
	return []byte(h.String())
}

// String returns the header as a string, including the blank line that
// terminates it.
func (h *Header) String() string {
	var sb strings.Builder
	_, _ = h.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes every value of every field as "Name: Value" followed by CRLF,
// folding embedded line breaks in the value, and then a final CRLF.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, f := range h.fields {
		for _, v := range f.Values {
			wn, err := io.WriteString(w, f.Name+": "+Fold(v)+CRLF)
			n += int64(wn)
			if err != nil {
				return n, err
			}
		}
	}

	wn, err := io.WriteString(w, CRLF)
	n += int64(wn)
	return n, err
}

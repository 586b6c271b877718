package addr

import "strings"

// kind distinguishes the two shapes an Address may take.
type kind int

const (
	kindPlain kind = iota
	kindMailbox
)

// Address is a single mailbox. Use Plain or Mailbox to construct one. The zero
// value is an empty plain address and renders as the empty string.
type Address struct {
	kind        kind
	raw         string
	displayName string
	email       string
}

// Plain returns an Address that renders the given string as-is, save for
// trimming surrounding whitespace.
func Plain(s string) Address {
	return Address{kind: kindPlain, raw: s}
}

// Mailbox returns an Address made up of a display name and an email address.
// Either may be empty.
func Mailbox(displayName, email string) Address {
	return Address{kind: kindMailbox, displayName: displayName, email: email}
}

// IsPlain returns true if the address was constructed with Plain.
func (a Address) IsPlain() bool {
	return a.kind == kindPlain
}

// DisplayName returns the display name of a Mailbox address. It is always
// empty for a Plain address.
func (a Address) DisplayName() string {
	return a.displayName
}

// Email returns the email of a Mailbox address or the trimmed string of a
// Plain address.
func (a Address) Email() string {
	if a.kind == kindPlain {
		return strings.TrimSpace(a.raw)
	}
	return a.email
}

// String renders the address for use in a header field body.
//
// A Mailbox renders as:
//
//	"Display Name" <email@example.com>   (both set)
//	"Display Name"                       (only the name)
//	email@example.com                    (only the email)
//
// Double quotes inside the display name are escaped with a backslash.
func (a Address) String() string {
	if a.kind == kindPlain {
		return strings.TrimSpace(a.raw)
	}

	var sb strings.Builder
	if a.displayName != "" {
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(a.displayName, `"`, `\"`))
		sb.WriteByte('"')
	}

	if a.email != "" {
		if sb.Len() > 0 {
			sb.WriteString(" <")
			sb.WriteString(a.email)
			sb.WriteByte('>')
		} else {
			sb.WriteString(a.email)
		}
	}

	return sb.String()
}

// List is an ordered list of addresses.
type List []Address

// PlainList is a shortcut for building a List of Plain addresses.
func PlainList(ss ...string) List {
	if len(ss) == 0 {
		return nil
	}
	l := make(List, len(ss))
	for i, s := range ss {
		l[i] = Plain(s)
	}
	return l
}

// String renders each address and joins them with ", ". An empty list renders
// as the empty string.
func (l List) String() string {
	if len(l) == 0 {
		return ""
	}

	out := make([]string, len(l))
	for i, a := range l {
		out[i] = a.String()
	}
	return strings.Join(out, ", ")
}

package addr

import (
	"strings"

	rfc5322 "github.com/zostay/go-addr/pkg/addr"
)

// ParseList breaks a header-style address list such as
//
//	Jane Doe <jane@example.com>, "Smith, John" <john@example.com>
//
// into a List of Plain addresses, each holding the element as it was written.
// The strict RFC 5322 parser is tried first, which copes with quoted commas in
// display names. If it fails, or if it does not account for every element of
// the list, the string is split on commas and each trimmed, non-empty piece
// becomes a Plain address.
//
// The result is nil if s contains no addresses at all.
func ParseList(s string) List {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	if l, ok := parseStrict(s); ok {
		return l
	}

	return splitList(s)
}

// parseStrict runs the RFC 5322 parser over s. It returns false when the
// parser rejects s, panics on it, or returns a different number of addresses
// than s has elements.
func parseStrict(s string) (l List, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			l, ok = nil, false
		}
	}()

	al, err := rfc5322.ParseEmailAddressList(s)
	if err != nil || len(al) == 0 || len(al) != countElements(s) {
		return nil, false
	}

	l = make(List, 0, len(al))
	for _, a := range al {
		orig := strings.TrimSpace(a.OriginalString())
		if orig == "" {
			return nil, false
		}
		l = append(l, Plain(orig))
	}
	return l, true
}

// countElements counts the non-empty elements of a comma separated list,
// ignoring commas inside quoted strings, comments and angle brackets.
func countElements(s string) int {
	var (
		n, depth       int
		quoted, escape bool
		filled         bool
	)

	for _, c := range s {
		switch {
		case escape:
			escape = false
		case c == '\\' && (quoted || depth > 0):
			escape = true
		case c == '"' && depth == 0:
			quoted = !quoted
		case quoted:
		case c == '(' || c == '<':
			depth++
		case (c == ')' || c == '>') && depth > 0:
			depth--
		case c == ',' && depth == 0:
			if filled {
				n++
			}
			filled = false
			continue
		}

		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			filled = true
		}
	}

	if filled {
		n++
	}
	return n
}

// splitList is the forgiving fallback used when strict parsing fails.
func splitList(s string) List {
	parts := strings.Split(s, ",")
	l := make(List, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		l = append(l, Plain(p))
	}
	if len(l) == 0 {
		return nil
	}
	return l
}

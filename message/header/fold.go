package header

import "regexp"

var lineBreaks = regexp.MustCompile(`\r\n|\r|\n`)

// Fold turns every CRLF, LF or lone CR inside a field body into a CRLF followed
// by a single space, so the remainder becomes a continuation line of the same
// field.
// Pre-folded values are therefore preserved and a value can never inject a
// field of its own.
func Fold(body string) string {
	return lineBreaks.ReplaceAllString(body, CRLF+" ")
}

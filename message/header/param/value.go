package param

import (
	"regexp"
	"strings"
)

// Parameter names used by this package.
const (
	Boundary = "boundary"
	Filename = "filename"
)

// Presentations for the Content-Disposition field.
const (
	Attachment = "attachment"
	Inline     = "inline"
)

var boundaryParam = regexp.MustCompile(`(?i)(?:^|[;\s])boundary=(?:"([^"]+)"|([^\s;"]+))`)

// GetBoundary finds the boundary parameter in a Content-Type body. The value
// may be quoted or unquoted and the parameter name is matched without regard
// to case. It returns false if no boundary is present.
func GetBoundary(contentType string) (string, bool) {
	m := boundaryParam.FindStringSubmatch(contentType)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

// Quote wraps a parameter value in double quotes, escaping any quotes or
// backslashes inside it.
func Quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

// Append adds a parameter to a field body, starting it on a folded
// continuation line:
//
//	multipart/mixed;
//	 boundary="abc"
//
// The value is always quoted.
func Append(body, name, value string) string {
	return body + ";\r\n " + name + "=" + Quote(value)
}

// Disposition renders a Content-Disposition body for the given presentation
// and filename, all on one line.
func Disposition(presentation, filename string) string {
	return presentation + "; " + Filename + "=" + Quote(filename)
}

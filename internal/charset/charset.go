// Package charset converts text read from disk into UTF-8 before it is put in
// a message body, which is always declared as charset=utf-8. It loads every
// encoding known to golang.org/x/text/encoding/ianaindex.
package charset

import (
	"fmt"
	"strings"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Decode returns b converted from the named charset to a UTF-8 string. An
// empty name or any name for UTF-8 or US-ASCII returns b unchanged.
func Decode(name string, b []byte) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return string(b), nil
	}

	e, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", name)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}

package cmd

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/zostay/go-eml/addr"
	"github.com/zostay/go-eml/internal/charset"
	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/header"
)

// parseHeader splits a --header value on its first colon.
func parseHeader(v string) (string, string, error) {
	name, value, found := strings.Cut(v, ":")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", "", &HeaderFormatError{Value: v}
	}
	return name, strings.TrimSpace(value), nil
}

// addressList parses every value of a repeatable address flag into one list.
func addressList(vs []string) addr.List {
	var l addr.List
	for _, v := range vs {
		l = append(l, addr.ParseList(v)...)
	}
	return l
}

// splitList splits every value of a repeatable flag on commas and drops blank
// entries.
func splitList(vs []string) []string {
	var out []string
	for _, v := range vs {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// readBody returns the literal body if given, otherwise the contents of the
// file decoded from cs. Both empty means no body.
func readBody(literal, path, cs string) (string, error) {
	if literal != "" {
		return literal, nil
	}
	if path == "" {
		return "", nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return charset.Decode(cs, b)
}

// readAttachment loads a file from disk as an attachment named after its base
// name with a content type guessed from its extension.
func readAttachment(path string) (message.Attachment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return message.Attachment{}, err
	}

	return message.Attachment{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        message.Binary(b),
	}, nil
}

// setDate parses any reasonable date and sets the Date field from it.
func setDate(h *header.Header, v string) error {
	t, err := header.ParseTime(v)
	if err != nil {
		return err
	}
	h.SetTime(header.Date, t)
	return nil
}

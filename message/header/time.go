package header

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// UnixDateWithEarlyYear is a format seen in the wild that the usual parsers
// have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// ParseTime parses a date for use in a Date field. The RFC 5322 format is tried
// first, then anything dateparse can recognize.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// FormatTime renders a time in the form used for the Date field.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

// SetTime sets the named field to the given time.
func (h *Header) SetTime(name string, t time.Time) {
	h.Set(name, FormatTime(t))
}

package message_test

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	testBoundaryID = "11111111-1111-4111-8111-111111111111"
	testMessageID  = "22222222-2222-4222-8222-222222222222"
	testBoundary   = "----=" + testBoundaryID
)

// assertDocument compares a generated document against the expected text and
// shows a character diff with visible line breaks when they differ.
func assertDocument(t *testing.T, expect, got string) {
	t.Helper()

	if expect == got {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(visible(expect), visible(got), false)
	t.Errorf("generated document differs from expected:\n%s", dmp.DiffPrettyText(diffs))
}

// visible makes CR and LF show up in diff output.
func visible(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\r':
			out = append(out, '␍')
		case '\n':
			out = append(out, '␊', '\n')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

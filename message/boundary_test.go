package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/message"
)

func TestGenerateBoundary(t *testing.T) {
	t.Parallel()

	b := message.GenerateBoundary(message.SequentialIDs("abc"))
	assert.Equal(t, "----=abc", b)

	rb := message.GenerateBoundary(message.RandomID)
	assert.Len(t, rb, len("----=")+36)
}

func TestResolveBoundary(t *testing.T) {
	t.Parallel()

	ids := func() message.IDGenerator { return message.SequentialIDs("gen") }

	b := message.ResolveBoundary("", false, ids())
	assert.Equal(t, "----=gen", b.Token)
	assert.Equal(t, "multipart/mixed;\r\n boundary=\"----=gen\"", b.ContentType)

	b = message.ResolveBoundary(`multipart/alternative; boundary="keep"`, true, ids())
	assert.Equal(t, "keep", b.Token)
	assert.Equal(t, `multipart/alternative; boundary="keep"`, b.ContentType)

	b = message.ResolveBoundary("multipart/related", true, ids())
	assert.Equal(t, "----=gen", b.Token)
	assert.Equal(t, "multipart/related;\r\n boundary=\"----=gen\"", b.ContentType)
}

func TestBoundary_Lines(t *testing.T) {
	t.Parallel()

	b := message.Boundary{Token: "X"}
	assert.Equal(t, "--X\r\n", b.Delimiter())
	assert.Equal(t, "--X--\r\n", b.Close())
}

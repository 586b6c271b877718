package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/addr"
	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/header"
)

func TestAssembleHeader_Overlay(t *testing.T) {
	t.Parallel()

	req := &message.Request{
		Subject: message.String("New"),
		From:    addr.PlainList("from@x.com"),
		To:      addr.PlainList("to@x.com", "other@x.com"),
		Cc:      addr.List{addr.Mailbox("C", "c@x.com")},
	}
	req.Headers.Set("X-First", "1")
	req.Headers.Set("subject", "Old")
	req.Headers.Set("Received", "a", "b")

	h, b, err := message.AssembleHeader(req, message.SequentialIDs(testBoundaryID, testMessageID))
	require.NoError(t, err)
	assert.Equal(t, testBoundary, b.Token)

	const expect = "X-First: 1\r\n" +
		"subject: New\r\n" +
		"Received: a\r\n" +
		"Received: b\r\n" +
		"From: from@x.com\r\n" +
		"To: to@x.com, other@x.com\r\n" +
		"Cc: \"C\" <c@x.com>\r\n" +
		"Content-Type: multipart/mixed;\r\n  boundary=\"" + testBoundary + "\"\r\n" +
		"Message-ID: <" + testMessageID + "@generated.local>\r\n" +
		"MIME-Version: 1.0\r\n" +
		"\r\n"
	assertDocument(t, expect, h.String())
}

func TestAssembleHeader_CallerToHeader(t *testing.T) {
	t.Parallel()

	req := &message.Request{}
	req.Headers.Set("To", "header@x.com")

	h, _, err := message.AssembleHeader(req, message.RandomID)
	require.NoError(t, err)

	v, err := h.Get(header.To)
	assert.NoError(t, err)
	assert.Equal(t, "header@x.com", v)
}

func TestAssembleHeader_KeepsExistingCasing(t *testing.T) {
	t.Parallel()

	req := &message.Request{To: addr.PlainList("a@x.com")}
	req.Headers.Set("content-type", "multipart/alternative")
	req.Headers.Set("message-id", "<mine@example.com>")
	req.Headers.Set("Mime-Version", "1.0")

	h, b, err := message.AssembleHeader(req, message.SequentialIDs("gen"))
	require.NoError(t, err)
	assert.Equal(t, "----=gen", b.Token)

	name, vs, found := h.Lookup(header.ContentType)
	require.True(t, found)
	assert.Equal(t, "content-type", name)
	assert.Equal(t, []string{"multipart/alternative;\r\n boundary=\"----=gen\""}, vs)

	out := h.String()
	assert.Contains(t, out, "message-id: <mine@example.com>\r\n")
	assert.NotContains(t, out, "Message-ID")
	assert.NotContains(t, out, "MIME-Version")
	assert.Contains(t, out, "Mime-Version: 1.0\r\n")
}

func TestAssembleHeader_MissingRecipient(t *testing.T) {
	t.Parallel()

	req := &message.Request{Subject: message.String("x")}
	req.Headers.Set("To", "  ")

	h, _, err := message.AssembleHeader(req, message.RandomID)
	assert.ErrorIs(t, err, message.ErrMissingRecipient)
	assert.Nil(t, h)
}

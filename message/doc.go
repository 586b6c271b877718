// Package message is the heart of this library. It turns a Request describing
// an email (its recipients, subject, bodies, attachments and any extra header
// fields) into the complete text of an RFC 5322 message, ready to be saved as an
// .eml file:
//
//	msg, err := message.Generate(&message.Request{
//		To:      addr.PlainList("recipient@example.com"),
//		From:    addr.PlainList("me@example.com"),
//		Subject: message.String("Hello"),
//		Text:    "Hello World",
//	})
//
// The output is always a multipart/mixed message, even when it carries only a
// single body or no parts at all. Text and HTML bodies are written with
// quoted-printable transfer encoding and attachments with base64.
//
// Generation performs no I/O and keeps no state between calls. Attachment data
// must already be in memory.
package message

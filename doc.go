// Package eml generates complete RFC 5322 email messages, ready to be saved as
// .eml files, from a structured description of the message.
//
// The work is split up by part of the message. The addr package renders the
// mailboxes that go into address fields. The message/header package holds the
// ordered header and knows how to fold and write it. The message/transfer
// package provides the quoted-printable and base64 encoders used for bodies
// and attachments. The message package ties these together: you describe the
// message with a message.Request and call message.Generate (or message.Build,
// if you also want to know about attachments that had to be skipped).
//
// Nothing here sends mail or reads files. The eml-generator command in
// cmd/eml-generator is a small wrapper that reads bodies and attachments from
// disk, generates the message and writes it out.
package eml

// Package transfer contains the Content-Transfer-Encoding writers used when a
// message is generated. Text bodies are written as quoted-printable and
// attachments as base64 wrapped at 76 columns.
//
// The quoted-printable encoding here is intentionally minimal. Only "=" and the
// bytes 0x80 through 0xFF are escaped. Lines are not soft-wrapped and control
// characters are passed through untouched.
package transfer

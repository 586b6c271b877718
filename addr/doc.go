// Package addr formats the mailbox values that end up in the From, To and Cc
// header fields of a generated message. An Address is either a plain string,
// which is used as-is apart from trimming, or a display name and email pair
// rendered in the quoted RFC 5322 form.
//
// No attempt is made to validate the local part or domain of an address. If
// you need strict parsing, ParseList can be used to break up a header-style
// list into its mailboxes first.
package addr

// Package header provides the ordered header used when generating a message.
// Fields keep the order in which they were first set, may be repeated by giving
// more than one value, and are looked up without regard to case.
//
// Output is always strictly formatted: each value is written on its own line,
// terminated by CRLF, and any line break embedded in a value is turned into a
// folded continuation line so that it cannot start a new header field.
package header

// Package param provides small helpers for the parameterized header fields a
// generated message uses, namely the boundary parameter of Content-Type and
// the filename parameter of Content-Disposition.
package param

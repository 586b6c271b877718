package message

import (
	"context"
	"log/slog"
)

// Option changes the behavior of a Builder.
type Option func(*Builder)

// WithIDGenerator replaces RandomID as the source of boundaries and
// Message-IDs.
func WithIDGenerator(ids IDGenerator) Option {
	return func(b *Builder) {
		if ids != nil {
			b.ids = ids
		}
	}
}

// WithLogger logs each Diagnostic at warn level as it is recorded.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

package log

import (
	"context"
	"log/slog"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/requestid"
)

// ContextHandler wraps an slog.Handler and adds request-scoped attributes
// (request_id, user_id) found in the record's context.
type ContextHandler struct {
	inner slog.Handler
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := requestid.FromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	if ident, ok := auth.IdentityFromContext(ctx); ok {
		r.AddAttrs(slog.Int64("user_id", ident.ID))
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}

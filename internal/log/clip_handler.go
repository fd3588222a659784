package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxAttrLen is the string attribute length budget. 256 bytes
// keeps a useful prefix of article text visible without flooding the
// terminal.
const DefaultMaxAttrLen = 256

// ClipHandler wraps an slog.Handler and truncates long string attribute
// values before passing records to the underlying handler. Clipped
// values end with an ellipsis marker carrying the original length, so
// the full size stays visible even when the content does not.
type ClipHandler struct {
	// handler is the underlying slog handler that receives clipped records.
	handler slog.Handler

	// maxLen is the string value length budget.
	maxLen int
}

// ClipHandlerOption configures a ClipHandler.
type ClipHandlerOption func(*ClipHandler)

// WithMaxAttrLen overrides the string attribute length budget.
func WithMaxAttrLen(n int) ClipHandlerOption {
	return func(h *ClipHandler) {
		if n > 0 {
			h.maxLen = n
		}
	}
}

// NewClipHandler creates a ClipHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewClipHandler(handler slog.Handler, opts ...ClipHandlerOption) *ClipHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}

	h := &ClipHandler{
		handler: handler,
		maxLen:  DefaultMaxAttrLen,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *ClipHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it on.
func (h *ClipHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})

	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes added,
// clipped first.
func (h *ClipHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clipped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clipped[i] = h.clipAttr(a)
	}
	return &ClipHandler{handler: h.handler.WithAttrs(clipped), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *ClipHandler) WithGroup(name string) slog.Handler {
	return &ClipHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// clipAttr clips a single attribute, recursively handling groups.
func (h *ClipHandler) clipAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clipped := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			clipped[i] = h.clipAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clipped...)}
	}

	if a.Value.Kind() == slog.KindString {
		if v := a.Value.String(); len(v) > h.maxLen {
			return slog.String(a.Key, fmt.Sprintf("%s… (%d bytes)", v[:h.maxLen], len(v)))
		}
	}

	return a
}

// NewClipLogger creates an slog.Logger writing text records to w with
// long attributes clipped. Verbose enables debug level output.
func NewClipLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewClipHandler(text))
}

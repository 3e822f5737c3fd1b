package logx

import (
	"context"
	"log/slog"
	"slices"
)

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler keeps only the latest value for each attribute key, so a logger can be narrowed repeatedly with
// [slog.Logger.With] without repeating keys in the output.
// Keys are qualified by their group, so "a" and "g.a" are distinct.
type DedupeHandler struct {
	group string
	attrs []slog.Attr
	impl  slog.Handler
}

// NewDedupeHandler wraps impl. A nil impl will panic.
func NewDedupeHandler(impl slog.Handler) *DedupeHandler {
	if impl == nil {
		panic("nil implementing handler")
	}
	return &DedupeHandler{impl: impl}
}

func (h *DedupeHandler) qualify(key string) string {
	if len(h.group) == 0 {
		return key
	}
	return h.group + "." + key
}

func (h *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.impl.Enabled(ctx, level)
}

func (h *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	merged := h
	if record.NumAttrs() > 0 {
		recordAttrs := make([]slog.Attr, 0, record.NumAttrs())
		record.Attrs(func(attr slog.Attr) bool {
			recordAttrs = append(recordAttrs, attr)
			return true
		})
		merged = h.withAttrs(recordAttrs)
		record = slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	}
	record.AddAttrs(merged.attrs...)
	return h.impl.Handle(ctx, record)
}

func (h *DedupeHandler) withAttrs(attrs []slog.Attr) *DedupeHandler {
	cp := &DedupeHandler{
		group: h.group,
		attrs: slices.Clone(h.attrs),
		impl:  h.impl,
	}
	for _, attr := range attrs {
		attr.Key = h.qualify(attr.Key)
		idx := slices.IndexFunc(cp.attrs, func(existing slog.Attr) bool {
			return existing.Key == attr.Key
		})
		if idx >= 0 {
			cp.attrs[idx] = attr
			continue
		}
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (h *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withAttrs(attrs)
}

func (h *DedupeHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}
	return &DedupeHandler{
		group: h.qualify(name),
		attrs: h.attrs,
		impl:  h.impl,
	}
}

// Package log provides the process-wide slog.Logger used across the
// chart pipeline. Every record passes through a span-aware handler that
// mirrors log attributes onto the active OpenTelemetry span, so a trace
// for one GetChart call carries its own log lines as span events instead
// of requiring a separate log correlation step.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vedastra/jyotisha/observability"
)

const component = "jyotisha"

var (
	logger   *slog.Logger
	initOnce sync.Once
)

func init() {
	initOnce.Do(func() {
		base := slog.NewTextHandler(os.Stdout, nil)
		logger = slog.New(NewHandler(base)).With(slog.String("component", component))
	})
}

// Logger returns the shared logger. Callers should not construct their
// own slog.Logger: a second handler chain would bypass span mirroring.
func Logger() *slog.Logger {
	return logger
}

// spanMirror wraps an slog.Handler and, for every record handled under a
// context carrying a recording span, copies the record onto that span as
// an event named "log.<level>". Error-level records also call
// span.RecordError, so a chart calculation that logs an error surfaces it
// on the trace even if the caller never inspects the returned error.
type spanMirror struct {
	handler slog.Handler
}

// NewHandler wraps h in a spanMirror, collapsing nested wrappers so
// repeated calls don't build a chain of redundant mirrors.
func NewHandler(h slog.Handler) *Handler {
	if nested, ok := h.(*Handler); ok {
		h = nested.handler
	}
	return &Handler{spanMirror{handler: h}}
}

// Handler is the exported handle on a spanMirror chain; it satisfies
// slog.Handler and is what init installs as the package logger's sink.
type Handler struct {
	spanMirror
}

// Handler returns the wrapped slog.Handler that records are passed on to.
func (h *Handler) Handler() slog.Handler {
	return h.handler
}

func (h spanMirror) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h spanMirror) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if span := observability.SpanFromContext(ctx); span != nil && span.IsRecording() {
			mirrorToSpan(span, r)
		}
	}
	return h.handler.Handle(ctx, r)
}

func mirrorToSpan(span trace.Span, r slog.Record) {
	attrs := collectSpanAttrs(r)
	attrs = append(attrs, attribute.String("log.level", r.Level.String()))
	span.AddEvent(fmt.Sprintf("log.%s", r.Level.String()), observability.WithAttributes(attrs...))

	if r.Level >= slog.LevelError {
		span.RecordError(errorFromRecord(r))
	}
}

// collectSpanAttrs converts every slog attribute on r into an OTel
// attribute.KeyValue, silently dropping any that fail to convert rather
// than aborting the whole event.
func collectSpanAttrs(r slog.Record) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		if kv, err := convertSlogAttrToSpanAttr(a.Key, a.Value); err == nil {
			attrs = append(attrs, kv)
		}
		return true
	})
	return attrs
}

// errorFromRecord pulls an "error" attribute off r if present and turns
// it into an error value; otherwise it falls back to the log message
// itself so span.RecordError always has something concrete to attach.
func errorFromRecord(r slog.Record) error {
	var found slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "error" {
			found = a
			return false
		}
		return true
	})
	if found.Key == "" {
		return fmt.Errorf("%s", r.Message)
	}
	if err, ok := found.Value.Any().(error); ok {
		return err
	}
	return fmt.Errorf("%v", found.Value.Any())
}

func convertSlogAttrToSpanAttr(key string, v slog.Value) (attribute.KeyValue, error) {
	var kv attribute.KeyValue
	switch v.Kind() {
	case slog.KindString:
		kv = attribute.String(key, v.String())
	case slog.KindBool:
		kv = attribute.Bool(key, v.Bool())
	case slog.KindInt64:
		kv = attribute.Int64(key, v.Int64())
	case slog.KindUint64:
		kv = attribute.Int64(key, int64(v.Uint64()))
	case slog.KindFloat64:
		kv = attribute.Float64(key, v.Float64())
	case slog.KindDuration:
		kv = attribute.String(key, v.Duration().String())
	case slog.KindTime:
		kv = attribute.String(key, v.Time().Format(time.RFC3339Nano))
	default:
		kv = attribute.String(key, fmt.Sprint(v.Any()))
	}
	if !kv.Valid() {
		return kv, fmt.Errorf("log: attribute %q did not convert to a valid span attribute", key)
	}
	return kv, nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHandler(h.handler.WithAttrs(attrs))
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return NewHandler(h.handler.WithGroup(name))
}

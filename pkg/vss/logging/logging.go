package logging

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// sensitiveKeys are attribute keys whose values are replaced before a record
// reaches the handler, whatever the caller passed.
var sensitiveKeys = map[string]struct{}{
	"secret":      {},
	"coefficient": {},
	"value":       {},
	"share_value": {},
}

// Logger is the logging surface the schemes write to. Every method takes a
// context so handlers can pick up request-scoped attributes.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger that writes through logger's handler after redacting
// sensitive attributes. Passing nil binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &schemeLogger{logger: slog.New(NewRedactingHandler(logger.Handler()))}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return &schemeLogger{logger: slog.New(slog.DiscardHandler)}
}

type schemeLogger struct {
	logger *slog.Logger
}

func (l *schemeLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *schemeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *schemeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *schemeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *schemeLogger) With(args ...any) Logger {
	return &schemeLogger{logger: l.logger.With(args...)}
}

// Redacted returns an attribute that records key without its value. Call sites
// use it where a secret would otherwise appear.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the string logged in place of a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}

// Sensitive reports whether values logged under key are redacted.
func Sensitive(key string) bool {
	_, ok := sensitiveKeys[key]
	return ok
}

// NewRedactingHandler wraps h so that attributes under sensitive keys, at any
// group depth, reach it as Placeholder().
func NewRedactingHandler(h slog.Handler) slog.Handler {
	if r, ok := h.(redactingHandler); ok {
		return r
	}
	return redactingHandler{next: h}
}

type redactingHandler struct {
	next slog.Handler
}

func (r redactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return r.next.Enabled(ctx, level)
}

func (r redactingHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redact(a))
		return true
	})
	return r.next.Handle(ctx, out)
}

func (r redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return redactingHandler{next: r.next.WithAttrs(redactAll(attrs))}
}

func (r redactingHandler) WithGroup(name string) slog.Handler {
	return redactingHandler{next: r.next.WithGroup(name)}
}

func redact(a slog.Attr) slog.Attr {
	if Sensitive(a.Key) {
		return Redacted(a.Key)
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redactAll(v.Group())...)}
	}
	return slog.Attr{Key: a.Key, Value: v}
}

func redactAll(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = redact(a)
	}
	return out
}

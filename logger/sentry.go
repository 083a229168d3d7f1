package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/kfly8/muxbuilder"
)

// InitSentry configures the global Sentry client.
// An empty dsn leaves reporting disabled.
func InitSentry(dsn string, env muxbuilder.Environment) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  env.String(),
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		return fmt.Errorf("%w: unable to init Sentry: %s", muxbuilder.ErrBadConfig, err)
	}

	return nil
}

// A SentryHandler captures the error of every record at [log/slog.LevelError] or above
// with Sentry before handing the record to the wrapped [log/slog.Handler].
// Records without an error under [ErrorKey] are not captured.
type SentryHandler struct {
	slog.Handler
}

// NewSentryHandler wraps h.
func NewSentryHandler(h slog.Handler) *SentryHandler {
	return &SentryHandler{Handler: h}
}

func (h *SentryHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.Handler.Handle(ctx, r)
	if r.Level < slog.LevelError {
		return err
	}

	var cause error
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != ErrorKey {
			return true
		}
		cause, _ = a.Value.Any().(error)
		return cause == nil
	})
	if cause == nil {
		return err
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetExtra("message", r.Message)
		hub.CaptureException(cause)
	})

	return err
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SentryHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *SentryHandler) WithGroup(name string) slog.Handler {
	return &SentryHandler{Handler: h.Handler.WithGroup(name)}
}

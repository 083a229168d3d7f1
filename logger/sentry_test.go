package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/logger"
	"github.com/stretchr/testify/require"
)

type transport struct {
	sync.Mutex
	events []*sentry.Event
}

func (tr *transport) Configure(sentry.ClientOptions) {}
func (tr *transport) Flush(time.Duration) bool { return true }
func (tr *transport) SendEvent(e *sentry.Event) {
	tr.Lock()
	defer tr.Unlock()
	tr.events = append(tr.events, e)
}

func hubContext(t *testing.T) (context.Context, *transport) {
	t.Helper()

	tr := new(transport)
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: tr, SampleRate: 1.0})
	require.Nil(t, err)

	hub := sentry.NewHub(client, sentry.NewScope())
	return sentry.SetHubOnContext(context.Background(), hub), tr
}

func TestSentryHandler(t *testing.T) {
	// Arrange
	ctx, tr := hubContext(t)
	var b bytes.Buffer
	l := logger.New(logger.WithEnv(muxbuilder.Production), logger.WithWriter(&b), logger.WithSentry())

	// Act
	l.InfoContext(ctx, "info", slog.Any(logger.ErrorKey, errors.New("ignored")))
	l.ErrorContext(ctx, "no error attr")
	l.ErrorContext(ctx, "failed", slog.String("op", "save"), slog.Any(logger.ErrorKey, errors.New("boom")))
	l.With(slog.String("req", "1")).WithGroup("g").ErrorContext(ctx, "grouped", slog.Any(logger.ErrorKey, errors.New("again")))

	// Assert
	require.Contains(t, b.String(), "no error attr")
	require.Contains(t, b.String(), "boom")

	tr.Lock()
	defer tr.Unlock()
	require.Len(t, tr.events, 2)
	require.Equal(t, "boom", tr.events[0].Exception[0].Value)
	require.Equal(t, "failed", tr.events[0].Extra["message"])
	require.Equal(t, "again", tr.events[1].Exception[0].Value)
}

package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/logger"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	// Arrange
	var b bytes.Buffer
	l := logger.New(logger.WithEnv(muxbuilder.Production), logger.WithWriter(&b), logger.WithLevel(slog.LevelDebug))

	// Act
	l.Debug("hello", slog.Int("n", 1))

	// Assert
	var rec map[string]any
	require.Nil(t, json.Unmarshal(b.Bytes(), &rec))
	require.Equal(t, "hello", rec[slog.MessageKey])
	require.Equal(t, "DEBUG", rec[slog.LevelKey])
	require.Equal(t, "app", rec[muxbuilder.LogKindKey])
	require.Equal(t, float64(1), rec["n"])
	require.True(t, strings.HasPrefix(rec[slog.SourceKey].(string), "logger/logger_test.go:"))
}

func TestNewLevel(t *testing.T) {
	// Arrange
	var b bytes.Buffer
	l := logger.New(logger.WithEnv(muxbuilder.Staging), logger.WithWriter(&b), logger.WithLevel(slog.LevelWarn))

	// Act
	l.Info("quiet")
	l.Warn("loud")

	// Assert
	require.NotContains(t, b.String(), "quiet")
	require.Contains(t, b.String(), "loud")
}

func TestNewLevelFromEnv(t *testing.T) {
	// Arrange
	t.Setenv(logger.LogLevelEnvVar, "error")
	t.Setenv(logger.EnvironmentEnvVar, "testing")
	var b bytes.Buffer
	l := logger.New(logger.WithWriter(&b))

	// Act
	l.Warn("quiet")
	l.Error("loud")

	// Assert
	require.NotContains(t, b.String(), "quiet")
	require.Contains(t, b.String(), `"msg":"loud"`)
}

func TestNewDevelopment(t *testing.T) {
	// Arrange
	var b bytes.Buffer
	l := logger.New(logger.WithEnv(muxbuilder.Development), logger.WithWriter(&b), logger.WithColor(false))

	// Act
	l.Info("hello", slog.String("who", "world"))

	// Assert
	out := b.String()
	require.Contains(t, out, "INF")
	require.Contains(t, out, "hello")
	require.Contains(t, out, "who=world")
	require.Contains(t, out, "kind=app")
	require.Contains(t, out, "logger/logger_test.go:")
	require.NotContains(t, out, "\x1b[")
}

func TestNewDevelopmentJSON(t *testing.T) {
	// Arrange
	var b bytes.Buffer
	l := logger.New(logger.WithEnv(muxbuilder.Development), logger.WithWriter(&b), logger.WithJSON())

	// Act
	l.Info("hello")

	// Assert
	require.True(t, json.Valid(b.Bytes()))
}

func TestNewHTTPKind(t *testing.T) {
	tcs := []struct {
		name string
		env  muxbuilder.Environment
	}{
		{"json", muxbuilder.Production},
		{"text", muxbuilder.Development},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var b bytes.Buffer
			l := logger.New(logger.WithEnv(tc.env), logger.WithKind(muxbuilder.HTTPLogKind), logger.WithWriter(&b))

			// Act
			l.Info("dropped", slog.Int("status", 200))

			// Assert
			out := b.String()
			require.NotContains(t, out, "dropped")
			require.NotContains(t, out, "INFO")
			require.Contains(t, out, "status")
			require.Contains(t, out, "http")
		})
	}
}

func TestWithEnvIgnoresInvalid(t *testing.T) {
	// Arrange
	t.Setenv(logger.EnvironmentEnvVar, "production")
	var b bytes.Buffer

	// Act
	logger.New(logger.WithEnv("NOPE"), logger.WithWriter(&b)).Info("hello")

	// Assert
	require.True(t, json.Valid(b.Bytes()))
}

func TestInitSentry(t *testing.T) {
	require.Nil(t, logger.InitSentry("", muxbuilder.Testing))

	err := logger.InitSentry("not-a-dsn", muxbuilder.Testing)
	require.ErrorIs(t, err, muxbuilder.ErrBadConfig)
	require.NotNil(t, errors.Unwrap(err))
}

package muxbuilder

import (
	"log/slog"
	"net/url"
	"strings"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

var (
	AppLogKind  = slog.StringValue("app")
	HTTPLogKind = slog.StringValue("http")

	// MaskedLogValue is a convenience [log/slog.Value]
	// to be used in implementations of [log/slog.LogValuer]
	// to hide sensitive data from log messages.
	MaskedLogValue = slog.StringValue(LogMaskVal)
)

// Mask replaces all values under key in vals with a single [LogMaskVal].
func Mask(vals url.Values, key string) {
	if vals.Has(key) {
		vals.Set(key, LogMaskVal)
	}
}

// NewLogLevel parses val into a [log/slog.Level].
// Unknown values are treated as [log/slog.LevelInfo].
func NewLogLevel(val string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(val)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

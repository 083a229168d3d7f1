package muxbuilder_test

import (
	"log/slog"
	"net/url"
	"testing"

	"github.com/kfly8/muxbuilder"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	for _, tc := range []struct {
		name string
		vals url.Values
		key  string
		want url.Values
	}{
		{"zero", url.Values{}, "", url.Values{}},
		{
			"mismatch",
			url.Values{"password": []string{"hunter2"}},
			"passwrod",
			url.Values{"password": []string{"hunter2"}},
		},
		{
			"match",
			url.Values{"password": []string{"hunter2"}},
			"password",
			url.Values{"password": []string{muxbuilder.LogMaskVal}},
		},
		{
			"squash-multiple",
			url.Values{"password": []string{"hunter2", "hunter3"}},
			"password",
			url.Values{"password": []string{muxbuilder.LogMaskVal}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			muxbuilder.Mask(tc.vals, tc.key)
			require.Equal(t, tc.want, tc.vals)
		})
	}
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		val      string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"FATAL", slog.LevelInfo},
	} {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, muxbuilder.NewLogLevel(tc.val))
		})
	}
}

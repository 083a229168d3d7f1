package middleware_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := slog.New(slog.NewTextHandler(b, nil))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	boom := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	// Act
	require.NotPanics(t, func() { middleware.Recover(l)(boom).ServeHTTP(w, r) })

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, b.String(), "panic recovered")
	require.Contains(t, b.String(), "boom")
}

func TestReportPanic(t *testing.T) {
	// Arrange + Act
	actual := middleware.ReportPanic(muxbuilder.Development)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	middleware.ReportPanic(muxbuilder.Production)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		wx.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusAccepted, w.Code)
}

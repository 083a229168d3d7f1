package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestForceHTTPS(t *testing.T) {
	tcs := []struct {
		name     string
		env      muxbuilder.Environment
		target   string
		proto    string
		status   int
		location string
	}{
		{"development", muxbuilder.Development, "http://example.com/a", "", http.StatusOK, ""},
		{"tls", muxbuilder.Production, "https://example.com/a", "", http.StatusOK, ""},
		{"proxied https", muxbuilder.Testing, "http://example.com/a", "https", http.StatusOK, ""},
		{"proxied http", muxbuilder.Testing, "http://example.com/a?b=c", "http", http.StatusPermanentRedirect, "https://example.com/a?b=c"},
		{"plain http", muxbuilder.Staging, "http://example.com/", "", http.StatusPermanentRedirect, "https://example.com/"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.proto != "" {
				r.Header.Set(middleware.ForwardedProtoHeader, tc.proto)
			}

			// Act
			middleware.ForceHTTPS(tc.env)(noopHandler()).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

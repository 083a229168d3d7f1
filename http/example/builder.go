package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/builder"
	"github.com/kfly8/muxbuilder/http/req"
	"github.com/kfly8/muxbuilder/http/resp"
	"github.com/kfly8/muxbuilder/http/router"
	"github.com/kfly8/muxbuilder/logger"
)

// A routeGroup registers one file's worth of routes.
type routeGroup func(b *builder.Builder)

// entries lists the route groups each entry serves.
var entries = map[string][]routeGroup{
	"all":   {statusRoutes, userRoutes, todoRoutes},
	"api":   {statusRoutes, userRoutes},
	"todos": {todoRoutes},
}

// newBuilder constructs the builder every route group registers on.
func newBuilder(l *slog.Logger) *builder.Builder {
	b := builder.New(router.WithLogger(l))
	b.Use(poweredBy)

	return b.
		SetNotFoundHandler(notFound).
		SetErrorHandler(onError(l))
}

// build constructs the application serving the route groups of entry.
func build(entry string, l *slog.Logger) (*router.Router, error) {
	groups, ok := entries[entry]
	if !ok {
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)

		return nil, fmt.Errorf("%w: entry %q, want one of %s", muxbuilder.ErrNotValid, entry, strings.Join(names, ", "))
	}

	b := newBuilder(l)
	for _, register := range groups {
		register(b)
	}

	return b.Build(), nil
}

func poweredBy(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Powered-By", "muxbuilder")
		h.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_ = resp.JSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
}

func onError(l *slog.Logger) router.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var herr *router.Error
		if errors.As(err, &herr) {
			body := map[string]any{"error": herr.Message}

			var verrs req.ValidationErrors
			if errors.As(err, &verrs) {
				body["validationErrors"] = []req.ValidationError(verrs)
			}

			_ = resp.JSON(w, herr.Status, body)
			return
		}

		l.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.Any(logger.ErrorKey, err))
		_ = resp.JSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal Server Error",
			"message": err.Error(),
		})
	}
}

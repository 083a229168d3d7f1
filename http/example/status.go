package main

import (
	"net/http"
	"time"

	"github.com/kfly8/muxbuilder/builder"
	"github.com/kfly8/muxbuilder/http/resp"
)

var started = time.Now()

func statusRoutes(b *builder.Builder) {
	b.Get("/api/status", func(w http.ResponseWriter, r *http.Request) error {
		return resp.JSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(started).Round(time.Second).String(),
		})
	})
}

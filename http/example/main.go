/*
Package main serves a small JSON API built with a builder.

Route files register on a shared [*builder.Builder] without being able to serve from it;
an entry picks which route files make it into the application it builds:

	go run ./http/example -entry api

Set ENVIRONMENT, HOST, PORT and the other variables ranger reads,
or put them in a .env file.
With REDIS_URL set, idempotency keys of POST /todos are kept in Redis instead of memory.
*/
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/kfly8/muxbuilder/http/router"
	"github.com/kfly8/muxbuilder/logger"
	"github.com/kfly8/muxbuilder/ranger"
)

const redisURLEnvVar = "REDIS_URL"

func main() {
	entry := flag.String("entry", "all", "route groups to serve: all, api or todos")
	flag.Parse()

	if err := ranger.LoadEnv(); err != nil {
		slog.Error("could not load env", slog.Any(logger.ErrorKey, err))
		os.Exit(1)
	}

	l := logger.New()
	if url := muxbuilder.EnvVarOrString(redisURLEnvVar, ""); url != "" {
		cache, err := middleware.NewRedisCacheFromURL(url, middleware.DefaultIdempotencyTTL)
		if err != nil {
			l.Error("could not configure redis", slog.Any(logger.ErrorKey, err))
			os.Exit(1)
		}
		defer cache.Close()
		idemCache = cache
	}

	app, err := build(*entry, l)
	if err != nil {
		l.Error("could not build app", slog.Any(logger.ErrorKey, err))
		os.Exit(1)
	}

	rng, err := ranger.New(app, ranger.WithLogger(l))
	if err != nil {
		l.Error("could not configure server", slog.Any(logger.ErrorKey, err))
		os.Exit(1)
	}

	if rng.Env().IsDevelopment() {
		_ = router.ShowRoutes(os.Stdout, app, router.Verbose())
	}

	if err := rng.Guide(); err != nil {
		l.Error("server stopped", slog.Any(logger.ErrorKey, err))
		os.Exit(1)
	}
}

/*
Package ranger runs a built application as an [*net/http.Server].

[New] reads its configuration from environment variables,
which [LoadEnv] can first populate from .env files,
and wraps the application in the standard middleware stack:
panic recovery, Sentry reporting, request IDs, client IPs, request logging and CORS.
FORCE_HTTPS adds HTTPS redirects, RATE_LIMIT and RATE_LIMIT_BURST add per-IP rate limiting,
and MAINTENANCE_MODE answers every request with [MaintenanceHandler].

	app := b.Build()

	rng, err := ranger.New(app)
	if err != nil {
		log.Fatal(err)
	}

	if err := rng.Guide(); err != nil {
		log.Fatal(err)
	}

[*Ranger.Guide] serves until the process receives a shutdown signal,
the context set with [WithContext] is done, or [*Ranger.Shutdown] is called.
*/
package ranger

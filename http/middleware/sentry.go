package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/kfly8/muxbuilder"
)

// ReportPanic recovers panics escaping the wrapped http.Handler and reports them to Sentry,
// then re-panics so outer middleware, such as Recover, can still respond.
//
// ReportPanic also binds a Sentry hub to the request context,
// which the router's default error handler uses to report handler errors.
//
// In development, NoopAdapter returns and this middleware does nothing.
func ReportPanic(env muxbuilder.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: false,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(h)
	}
}

/*
Package logger constructs the [*log/slog.Logger]s a muxbuilder application logs with.

[New] picks a handler by [muxbuilder.Environment]: colorized text in development,
JSON everywhere else. Every record carries the kind of log it is
under [muxbuilder.LogKindKey], so application and HTTP request logs can be told apart.

	l := logger.New(logger.WithSentry())
	l.Error("could not render", slog.Any(logger.ErrorKey, err))

[WithSentry] forwards error records carrying an error under [ErrorKey] to Sentry,
through the hub bound to the context logged with when there is one.
Call [InitSentry] first to configure the Sentry client.
*/
package logger

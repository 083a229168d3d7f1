/*
The middleware package defines what a middleware is in muxbuilder and a set of basic middlewares.

Every middleware is an [Adapter] and can be handed to Use on a router or a builder,
or attached to a single route.

The available middlewares are:
- CORS
- ForceHTTPS
- Idempotent
- InjectIPAddress
- LogRequest
- RateLimit
- Recover
- ReportPanic
- RequestID

Idempotent is meant for single routes rather than Use:

	b.Post("/todos", createTodo, middleware.Idempotent(cache))

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	b.Use(
		middleware.Recover(log),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.RateLimit(vs),
		middleware.LogRequest(log),
	)
*/
package middleware

/*
The router package provides a chainable HTTP router over [github.com/gorilla/mux].

A [*Router] registers [Route]s on a route [*Table] and serves requests against it.
Every registering method returns a *Router so registrations chain:

	r := router.New()
	r.Get("/users", listUsers).
		Post("/users", createUser).
		Also(http.MethodDelete, purgeUsers)

	api := r.BasePath("/api")
	api.Get("/users/{id:[0-9]+}", showUser)

Handlers return an error. A returned error, or a panic, is handed to the
error handler set with OnError, or to the default one, which responds with
the status of an [*Error] or with http.StatusInternalServerError.
Requests matching no route go to the handler set with NotFound.

Routers derived with BasePath share the Table they came from, as does every
Router pointed at a Table with SetTable, so a route registered through any of them
is served by all of them. The not-found and error handlers belong to a single Router:
the one whose ServeHTTP received the request.

Other applications are attached with Route, which lists their routes in the Table,
and raw [http.Handler]s with Mount.
*/
package router

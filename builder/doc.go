/*
The builder package restricts a [*router.Router] to the operations
that configure it, so route files can share one value without serving from it.

A [*Builder] accepts the registration calls a Router does and chains the same way.
Serving requests, and setting the not-found or error handler directly,
are unavailable: those methods return an [*UnavailableError] instead.
Not-found and error handlers are stored with SetNotFoundHandler and SetErrorHandler
and installed by Build, which returns a Router with no restrictions.

	b := builder.New()

	b.Get("/hello", func(w http.ResponseWriter, r *http.Request) error {
		return resp.JSON(w, http.StatusOK, map[string]string{"message": "Hello!"})
	})
	b.SetNotFoundHandler(func(w http.ResponseWriter, r *http.Request) {
		_ = resp.JSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
	})

	app := b.Build()
	http.ListenAndServe(":8080", app)

A built Router shares the route table of the Builder it came from.
Routes registered on the Builder after Build are served by every Router it built.
*/
package builder

/*
Package req parses the payload of an HTTP request into a struct and validates it.

JSON bodies are decoded with [encoding/json] and query parameters with [github.com/gorilla/schema];
either way the struct is then checked against its "validate" tags
with [github.com/go-playground/validator/v10].
The "enum" rule accepts fields implementing [muxbuilder.Enumerable] whose Valid method succeeds.

	type newTodo struct {
		Title string `json:"title" validate:"required"`
	}

	b.Post("/todos", func(w http.ResponseWriter, r *http.Request) error {
		var body newTodo
		if err := req.Decode(r, &body); err != nil {
			return err
		}
		...
	})

Failures are translated to muxbuilder sentinel errors, so callers can tell
a malformed request ([muxbuilder.ErrBadFormat], [muxbuilder.ErrNotValid])
from a programming mistake ([muxbuilder.ErrBadAny], [muxbuilder.ErrNotImplemented]).
*/
package req

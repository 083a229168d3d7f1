/*
The resp package writes the response bodies route handlers, not-found handlers
and error handlers most often produce: JSON documents and plain text.

	b.Get("/hello", func(w http.ResponseWriter, r *http.Request) error {
		return resp.JSON(w, http.StatusOK, map[string]string{"message": "Hello!"})
	})
*/
package resp

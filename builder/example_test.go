package builder_test

import (
	"fmt"
	"io"
	"net/http"

	"github.com/kfly8/muxbuilder/builder"
	"github.com/kfly8/muxbuilder/http/resp"
)

func Example() {
	b := builder.New()

	b.Get("/hello", func(w http.ResponseWriter, r *http.Request) error {
		return resp.JSON(w, http.StatusOK, map[string]string{"message": "Hello!"})
	})
	b.SetNotFoundHandler(func(w http.ResponseWriter, r *http.Request) {
		_ = resp.JSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
	})

	app := b.Build()

	for _, target := range []string{"/hello", "/unknown"} {
		res, _ := app.Request(target)
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		fmt.Println(res.StatusCode, string(body))
	}

	// Output:
	// 200 {"message":"Hello!"}
	// 404 {"error":"Not Found"}
}

func ExampleBuilder_NotFound() {
	b := builder.New()

	err := b.NotFound(nil)

	fmt.Println(err)
	// Output: builder: NotFound is not available on a builder
}

package builder

import (
	"github.com/kfly8/muxbuilder/http/router"
)

// Build returns a new [*router.Router] serving the routes of b,
// with the handlers stored on b installed.
//
// The Router shares the route table of b rather than copying it:
// routes registered on b later are served by it too.
// Build leaves b unchanged and may be called any number of times.
func (b *Builder) Build() *router.Router {
	app := router.New(
		router.WithMatcher(b.router.Matcher()),
		router.WithLogger(b.router.Logger()),
	)

	if b.onError != nil {
		app.OnError(b.onError)
	}

	if b.notFound != nil {
		app.NotFound(b.notFound)
	}

	return app.SetTable(b.router.Table())
}

package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kfly8/muxbuilder/http/middleware"
)

// MethodAll is the Route.Method of routes answering every HTTP method.
const MethodAll = "ALL"

// A Route maps a path and HTTP method to a [HandlerFunc].
// Additional [middleware.Adapter] are called, in order,
// before the Handler when a server handles a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     HandlerFunc
	Middlewares []middleware.Adapter
}

// A Table is the route table every [*Router] derived from the same [New] call shares.
// It owns the root [*mux.Router] requests are matched against
// and an ordered listing of the Routes registered on it.
type Table struct {
	mux    *mux.Router
	routes []Route
}

// newTable constructs a Table whose root [*mux.Router] is configured by m.
// Requests matching no route are handed to the not-found handler
// of the [*Router] serving them.
func newTable(m Matcher) *Table {
	root := mux.NewRouter()
	root.StrictSlash(m.StrictSlash)
	root.SkipClean(m.SkipClean)
	if m.UseEncodedPath {
		root.UseEncodedPath()
	}
	root.NotFoundHandler = http.HandlerFunc(serveNotFound)

	return &Table{mux: root}
}

// Routes returns a copy of the Routes registered on the Table in registration order.
func (t *Table) Routes() []Route {
	routes := make([]Route, len(t.routes))
	copy(routes, t.routes)
	return routes
}

// Len reports how many Routes are registered on the Table.
func (t *Table) Len() int { return len(t.routes) }

func (t *Table) add(route Route) { t.routes = append(t.routes, route) }

// matches reports whether any route in the Table answers r,
// even if only for a different method.
func (t *Table) matches(r *http.Request) bool {
	var m mux.RouteMatch
	t.mux.Match(r, &m)
	return m.MatchErr != mux.ErrNotFound
}

package router

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// BasePath returns a new [*Router] registering every route under path,
// relative to the base path of r.
// The new Router shares the route table of r and starts with its hooks.
func (r *Router) BasePath(path string) *Router {
	sub := *r
	sub.lastPath = ""

	path = strings.TrimRight(path, "/")
	prefix := joinPath(r.prefix, path)
	if prefix == "/" {
		sub.prefix = ""
		return &sub
	}

	sub.prefix = prefix
	sub.mux = r.mux.PathPrefix(r.relative(path)).Subrouter()
	return &sub
}

// Route mounts the application app under path.
// Requests under path matching a route of app are served by app with path stripped;
// all others fall through to the rest of the routes of r.
// The routes of app are listed in the table of r, prefixed with path.
//
// Errors raised in app's handlers go to app's error handler when it has one set,
// and to the error handler of the Router serving the request otherwise.
func (r *Router) Route(path string, app *Router) *Router {
	if app == nil {
		panic("router: nil application mounted at " + path)
	}

	path = strings.TrimRight(path, "/")
	prefix := joinPath(r.prefix, path)
	r.mux.PathPrefix(r.relative(path)).
		MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
			stripped, ok := stripPrefix(req, prefix)
			return ok && app.table.matches(stripped)
		}).
		HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			stripped, _ := stripPrefix(req, prefix)
			app.serveMounted(w, stripped)
		})

	for _, route := range app.Routes() {
		route.Path = joinPath(prefix, route.Path)
		r.table.add(route)
	}
	return r
}

// A MountOption configures how [*Router.Mount] hands requests to the mounted handler.
type MountOption func(*mountConfig)

type mountConfig struct {
	replace  func(*http.Request) *http.Request
	keepPath bool
}

// WithReplaceRequest sets the function rewriting requests before the mounted handler sees them.
// It replaces the default rewrite of stripping the mount path.
func WithReplaceRequest(fn func(*http.Request) *http.Request) MountOption {
	return func(c *mountConfig) { c.replace = fn }
}

// KeepPath hands requests to the mounted handler unmodified.
func KeepPath() MountOption {
	return func(c *mountConfig) { c.keepPath = true }
}

// Mount hands every request under path, whatever its method, to h.
// By default the mount path is stripped from the request path first.
func (r *Router) Mount(path string, h http.Handler, opts ...MountOption) *Router {
	if h == nil {
		panic("router: nil handler mounted at " + path)
	}

	c := new(mountConfig)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	path = strings.TrimRight(path, "/")
	prefix := joinPath(r.prefix, path)
	serve := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch {
		case c.replace != nil:
			req = c.replace(req)
		case !c.keepPath:
			req, _ = stripPrefix(req, prefix)
		}
		h.ServeHTTP(w, req)
	})

	r.mux.PathPrefix(r.relative(path)).
		MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
			_, ok := stripPrefix(req, prefix)
			return ok
		}).
		Handler(serve)

	r.table.add(Route{
		Path:   joinPath(prefix, "/*"),
		Method: MethodAll,
		Handler: func(w http.ResponseWriter, req *http.Request) error {
			serve.ServeHTTP(w, req)
			return nil
		},
	})
	return r
}

// stripPrefix returns a shallow copy of req with prefix removed from its path.
// It reports false when the path of req is not under prefix.
func stripPrefix(req *http.Request, prefix string) (*http.Request, bool) {
	if prefix == "/" {
		return req, true
	}

	rest, found := strings.CutPrefix(req.URL.Path, prefix)
	if !found || (rest != "" && rest[0] != '/') {
		return req, false
	}

	if rest == "" {
		rest = "/"
	}

	return withPath(req, rest), true
}

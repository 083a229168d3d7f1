package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kfly8/muxbuilder/http/middleware"
)

// A HandlerFunc handles a request matching a [Route].
// A non-nil error, or a panic, is handed to the error handler of the [*Router] serving the request.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// An ErrorHandler responds to a request whose [HandlerFunc] failed.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// A Router registers [Route]s on a [*Table] and serves requests against it.
//
// Every registering method returns a *Router so calls chain.
// Routers derived with BasePath share the Table of the Router they came from.
type Router struct {
	table    *Table
	mux      *mux.Router
	prefix   string
	matcher  Matcher
	logger   *slog.Logger
	lastPath string
	notFound http.HandlerFunc
	onError  ErrorHandler
}

// New constructs a [*Router] over a fresh [*Table].
func New(opts ...Option) *Router {
	c := new(config)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	t := newTable(c.matcher)
	return &Router{table: t, mux: t.mux, matcher: c.matcher, logger: c.logger}
}

// Get registers h for GET requests to path.
func (r *Router) Get(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodGet}, path, h, mws...)
}

// Post registers h for POST requests to path.
func (r *Router) Post(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodPost}, path, h, mws...)
}

// Put registers h for PUT requests to path.
func (r *Router) Put(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodPut}, path, h, mws...)
}

// Delete registers h for DELETE requests to path.
func (r *Router) Delete(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodDelete}, path, h, mws...)
}

// Patch registers h for PATCH requests to path.
func (r *Router) Patch(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodPatch}, path, h, mws...)
}

// Options registers h for OPTIONS requests to path.
func (r *Router) Options(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodOptions}, path, h, mws...)
}

// Head registers h for HEAD requests to path.
func (r *Router) Head(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{http.MethodHead}, path, h, mws...)
}

// All registers h for requests to path with any method.
func (r *Router) All(path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	return r.On([]string{MethodAll}, path, h, mws...)
}

// On registers h for requests to path with any of methods.
//
// Paths follow [mux.Router] templates, e.g. "/users/{id:[0-9]+}";
// read variables with [Param].
// Middlewares run in the order given, before h.
func (r *Router) On(methods []string, path string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	for _, method := range methods {
		r.register(strings.ToUpper(method), path, h, mws)
	}
	return r
}

// Also registers h for method on the path most recently registered through r,
// or "/" if none was.
func (r *Router) Also(method string, h HandlerFunc, mws ...middleware.Adapter) *Router {
	path := r.lastPath
	if path == "" {
		path = "/"
	}
	return r.On([]string{method}, path, h, mws...)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) *Router {
	return r.HandleRoutes([]Route{route})
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the shared set.
// A Route without a Method answers every method.
func (r *Router) HandleRoutes(routes []Route, mws ...middleware.Adapter) *Router {
	for _, route := range routes {
		stack := make([]middleware.Adapter, 0, len(mws)+len(route.Middlewares))
		stack = append(stack, mws...)
		stack = append(stack, route.Middlewares...)

		method := route.Method
		if method == "" {
			method = MethodAll
		}
		r.register(strings.ToUpper(method), route.Path, route.Handler, stack)
	}
	return r
}

// Use appends middlewares to the stack run for every request matching a route
// registered through r or any Router derived from it.
func (r *Router) Use(mws ...middleware.Adapter) *Router {
	for _, mw := range mws {
		if mw != nil {
			r.mux.Use(mux.MiddlewareFunc(mw))
		}
	}
	return r
}

// NotFound sets the handler for requests matching no route.
func (r *Router) NotFound(h http.HandlerFunc) *Router {
	r.notFound = h
	return r
}

// OnError sets the handler for requests whose [HandlerFunc] failed.
func (r *Router) OnError(h ErrorHandler) *Router {
	r.onError = h
	return r
}

// Matcher returns the path-matching strategy of r.
func (r *Router) Matcher() Matcher { return r.matcher }

// Logger returns the logger the default hooks of r report errors to.
func (r *Router) Logger() *slog.Logger { return r.logger }

// Prefix returns the base path r registers routes under.
func (r *Router) Prefix() string { return r.prefix }

// Routes returns the Routes of the route table r registers into.
func (r *Router) Routes() []Route { return r.table.Routes() }

// Table returns the route table r registers into.
func (r *Router) Table() *Table { return r.table }

// SetTable points r at t.
// r registers and serves against t from then on, at the root of t.
// The Table is shared, not copied: routes registered through either owner are visible to both.
func (r *Router) SetTable(t *Table) *Router {
	if t == nil {
		panic("router: nil table")
	}

	r.table = t
	r.mux = t.mux
	r.prefix = ""
	return r
}

// Param returns the route variable name of the request r, or "" if it has none.
func Param(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

func (r *Router) register(method, path string, h HandlerFunc, mws []middleware.Adapter) {
	if h == nil {
		panic(fmt.Sprintf("router: nil handler for %s %s", method, path))
	}

	route := r.mux.Handle(r.relative(path), middleware.Chain(handle(h), mws...))
	if method != MethodAll {
		route.Methods(method)
	}
	if err := route.GetError(); err != nil {
		panic(fmt.Sprintf("router: %s %s: %s", method, path, err))
	}

	r.table.add(Route{
		Path:        joinPath(r.prefix, path),
		Method:      method,
		Handler:     h,
		Middlewares: mws,
	})
	r.lastPath = path
}

// relative turns path into the template registered on r.mux.
// The root of a prefixed Router is the prefix itself, not the prefix followed by a slash.
func (r *Router) relative(path string) string {
	if path == "" || path == "/" {
		if r.prefix != "" {
			return ""
		}
		return "/"
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// joinPath merges base and path into a single absolute path.
func joinPath(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" || path == "/" {
		if base == "" {
			return "/"
		}
		return base
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

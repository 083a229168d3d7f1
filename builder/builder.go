package builder

import (
	"context"
	"net"
	"net/http"

	"github.com/kfly8/muxbuilder/http/middleware"
	"github.com/kfly8/muxbuilder/http/router"
)

// A Builder configures a [*router.Router] it never serves from.
//
// Methods that register routes or middlewares forward to the Router.
// Methods that derive another Router return a Builder over it,
// which starts with the handlers stored on this one.
type Builder struct {
	router   *router.Router
	notFound http.HandlerFunc
	onError  router.ErrorHandler
}

// New constructs a [*Builder] over a new [*router.Router] configured by opts.
func New(opts ...router.Option) *Builder {
	return wrap(router.New(opts...), nil, nil)
}

// Wrap constructs a [*Builder] over r.
// r keeps working as before; only the Builder is restricted.
func Wrap(r *router.Router) *Builder {
	return wrap(r, nil, nil)
}

func wrap(r *router.Router, notFound http.HandlerFunc, onError router.ErrorHandler) *Builder {
	if r == nil {
		panic("builder: nil router")
	}

	return &Builder{router: r, notFound: notFound, onError: onError}
}

// derive returns the Builder over r: b itself when r is the Router of b.
func (b *Builder) derive(r *router.Router) *Builder {
	if r == b.router {
		return b
	}
	return wrap(r, b.notFound, b.onError)
}

// SetNotFoundHandler stores h as the not-found handler of the Routers b builds.
// A later call replaces h. The write stays local to b: builders already derived
// from b, and the builder b was derived from, keep their own handlers.
//
// A request whose path matches a route but whose method does not gets an empty
// 405 from the router and never reaches h.
func (b *Builder) SetNotFoundHandler(h http.HandlerFunc) *Builder {
	b.notFound = h
	return b
}

// SetErrorHandler stores h as the error handler of the Routers b builds.
// A later call replaces h. The write stays local to b: builders already derived
// from b, and the builder b was derived from, keep their own handlers.
func (b *Builder) SetErrorHandler(h router.ErrorHandler) *Builder {
	b.onError = h
	return b
}

// BasePath returns a [*Builder] registering every route under path.
func (b *Builder) BasePath(path string) *Builder {
	return b.derive(b.router.BasePath(path))
}

// Route mounts the application app under path.
// app is usually the result of another Builder's Build.
func (b *Builder) Route(path string, app *router.Router) *Builder {
	return b.derive(b.router.Route(path, app))
}

// Mount hands every request under path to h.
func (b *Builder) Mount(path string, h http.Handler, opts ...router.MountOption) *Builder {
	return b.derive(b.router.Mount(path, h, opts...))
}

func (b *Builder) Get(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Get(path, h, mws...))
}

func (b *Builder) Post(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Post(path, h, mws...))
}

func (b *Builder) Put(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Put(path, h, mws...))
}

func (b *Builder) Delete(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Delete(path, h, mws...))
}

func (b *Builder) Patch(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Patch(path, h, mws...))
}

func (b *Builder) Options(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Options(path, h, mws...))
}

func (b *Builder) Head(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Head(path, h, mws...))
}

// All registers h for requests to path with any method.
func (b *Builder) All(path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.All(path, h, mws...))
}

// On registers h for requests to path with any of methods.
func (b *Builder) On(methods []string, path string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.On(methods, path, h, mws...))
}

// Also registers h for method on the path most recently registered through b.
func (b *Builder) Also(method string, h router.HandlerFunc, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Also(method, h, mws...))
}

func (b *Builder) Use(mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.Use(mws...))
}

func (b *Builder) Handle(route router.Route) *Builder {
	return b.derive(b.router.Handle(route))
}

func (b *Builder) HandleRoutes(routes []router.Route, mws ...middleware.Adapter) *Builder {
	return b.derive(b.router.HandleRoutes(routes, mws...))
}

// Routes returns the routes registered so far, in registration order.
func (b *Builder) Routes() []router.Route { return b.router.Routes() }

// Matcher returns the path-matching strategy the Routers b builds use.
func (b *Builder) Matcher() router.Matcher { return b.router.Matcher() }

// Prefix returns the base path b registers routes under.
func (b *Builder) Prefix() string { return b.router.Prefix() }

// ServeHTTP is unavailable on a [*Builder]; serve from the Router Build returns.
// Its signature keeps a Builder from satisfying [http.Handler].
func (b *Builder) ServeHTTP(http.ResponseWriter, *http.Request) error {
	return unavailable("ServeHTTP")
}

// Request is unavailable on a [*Builder].
func (b *Builder) Request(string, ...router.RequestOption) (*http.Response, error) {
	return nil, unavailable("Request")
}

// Fire is unavailable on a [*Builder].
func (b *Builder) Fire(context.Context, string) (net.Addr, error) {
	return nil, unavailable("Fire")
}

// NotFound is unavailable on a [*Builder]; use SetNotFoundHandler.
func (b *Builder) NotFound(http.HandlerFunc) error {
	return unavailable("NotFound")
}

// OnError is unavailable on a [*Builder]; use SetErrorHandler.
func (b *Builder) OnError(router.ErrorHandler) error {
	return unavailable("OnError")
}

package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/kfly8/muxbuilder"
	"github.com/kfly8/muxbuilder/http/resp"
)

const shutdownTimeout = 5 * time.Second

// ServeHTTP responds to an HTTP request using the route table of r
// and the hooks of r.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.matcher.GetPath != nil {
		req = withPath(req, r.matcher.GetPath(req))
	}

	r.table.mux.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), muxbuilder.RouterKey, r)))
}

// A RequestOption configures the request [*Router.Request] sends.
type RequestOption func(*requestConfig)

type requestConfig struct {
	ctx    context.Context
	method string
	body   io.Reader
	header http.Header
}

// WithMethod sets the request method; the default is GET.
func WithMethod(method string) RequestOption {
	return func(c *requestConfig) { c.method = method }
}

// WithBody sets the request body.
func WithBody(body io.Reader) RequestOption {
	return func(c *requestConfig) { c.body = body }
}

// WithHeader adds a request header.
func WithHeader(key, val string) RequestOption {
	return func(c *requestConfig) { c.header.Add(key, val) }
}

// WithContext sets the request context.
func WithContext(ctx context.Context) RequestOption {
	return func(c *requestConfig) { c.ctx = ctx }
}

// Request serves a request to target in-process and returns the recorded response.
// A target beginning with "/" is requested from http://localhost.
func (r *Router) Request(target string, opts ...RequestOption) (*http.Response, error) {
	c := &requestConfig{ctx: context.Background(), method: http.MethodGet, header: make(http.Header)}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if strings.HasPrefix(target, "/") {
		target = "http://localhost" + target
	}

	req, err := http.NewRequestWithContext(c.ctx, c.method, target, c.body)
	if err != nil {
		return nil, fmt.Errorf("router: request %s %s: %w", c.method, target, err)
	}
	for key, vals := range c.header {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Result(), nil
}

// Fire starts serving r on addr in the background and returns the address listened on.
// The server shuts down once ctx is done; serving errors are logged, not returned.
func (r *Router) Fire(ctx context.Context, addr string) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("router: listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		r.logger.Info("serving", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.logger.Error("serving stopped", slog.String("addr", ln.Addr().String()), slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			r.logger.Error("shutdown failed", slog.Any("error", err))
		}
	}()

	return ln.Addr(), nil
}

// serveMounted serves req as an application mounted inside another Router.
// The outer Router keeps handling errors unless r has its own error handler.
func (r *Router) serveMounted(w http.ResponseWriter, req *http.Request) {
	if r.onError != nil {
		req = req.WithContext(context.WithValue(req.Context(), muxbuilder.RouterKey, r))
	}
	r.table.mux.ServeHTTP(w, req)
}

func (r *Router) handleError(w http.ResponseWriter, req *http.Request, err error) {
	if r.onError != nil {
		r.onError(w, req, err)
		return
	}

	defaultError(r.logger, w, req, err)
}

// handle adapts h into the [http.Handler] registered on the route table.
func handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				serveError(w, req, &PanicError{Value: v})
			}
		}()

		if err := h(w, req); err != nil {
			serveError(w, req, err)
		}
	})
}

func serveError(w http.ResponseWriter, req *http.Request, err error) {
	if r := fromContext(req.Context()); r != nil {
		r.handleError(w, req, err)
		return
	}

	defaultError(slog.Default(), w, req, err)
}

func serveNotFound(w http.ResponseWriter, req *http.Request) {
	if r := fromContext(req.Context()); r != nil && r.notFound != nil {
		r.notFound(w, req)
		return
	}

	_ = resp.Text(w, http.StatusNotFound, "404 Not Found")
}

// defaultError responds with the status and message of an [*Error],
// or with http.StatusInternalServerError.
// Server errors are logged and, when a Sentry hub is bound to the request, reported.
func defaultError(l *slog.Logger, w http.ResponseWriter, req *http.Request, err error) {
	status, msg := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)

	var herr *Error
	if errors.As(err, &herr) {
		status, msg = herr.Status, herr.Message
	}

	if status >= http.StatusInternalServerError {
		l.ErrorContext(req.Context(), "handler failed",
			slog.Attr{Key: muxbuilder.LogKindKey, Value: muxbuilder.HTTPLogKind},
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		if hub := sentry.GetHubFromContext(req.Context()); hub != nil {
			hub.CaptureException(err)
		}
	}

	_ = resp.Text(w, status, msg)
}

func fromContext(ctx context.Context) *Router {
	r, _ := ctx.Value(muxbuilder.RouterKey).(*Router)
	return r
}

func withPath(req *http.Request, path string) *http.Request {
	r2 := new(http.Request)
	*r2 = *req
	r2.URL = new(url.URL)
	*r2.URL = *req.URL
	r2.URL.Path = path
	r2.URL.RawPath = ""
	return r2
}

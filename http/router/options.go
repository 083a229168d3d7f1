package router

import (
	"log/slog"
	"net/http"
)

// A Matcher is the path-matching strategy of a [*Router].
//
// StrictSlash, SkipClean and UseEncodedPath configure the underlying [*mux.Router]
// of the route table a Router creates; they are fixed once a table exists.
// GetPath, when set, derives the path a request is routed by,
// e.g. to route on the host as well as the path.
type Matcher struct {
	StrictSlash    bool
	SkipClean      bool
	UseEncodedPath bool
	GetPath        func(*http.Request) string
}

// An Option configures a [*Router] when constructing one with [New].
type Option func(*config)

type config struct {
	matcher Matcher
	logger  *slog.Logger
}

// WithStrictSlash redirects "/path/" to "/path" and vice versa
// depending on how the route was registered.
func WithStrictSlash(strict bool) Option {
	return func(c *config) { c.matcher.StrictSlash = strict }
}

// WithSkipClean routes requests without first cleaning the path,
// so "/a//b" is not redirected to "/a/b".
func WithSkipClean(skip bool) Option {
	return func(c *config) { c.matcher.SkipClean = skip }
}

// WithEncodedPath matches routes against the encoded request path.
func WithEncodedPath() Option {
	return func(c *config) { c.matcher.UseEncodedPath = true }
}

// WithGetPath sets the function deriving the routed path from a request.
func WithGetPath(fn func(*http.Request) string) Option {
	return func(c *config) { c.matcher.GetPath = fn }
}

// WithMatcher replaces the entire path-matching strategy.
func WithMatcher(m Matcher) Option {
	return func(c *config) { c.matcher = m }
}

// WithLogger sets the logger default hooks report errors to.
// If l is nil, [slog.Default] is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

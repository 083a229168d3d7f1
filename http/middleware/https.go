package middleware

import (
	"net/http"
	"net/url"

	"github.com/kfly8/muxbuilder"
)

// ForwardedProtoHeader is the header a proxy in front of the server reports the original scheme in.
const ForwardedProtoHeader = "X-Forwarded-Proto"

// ForceHTTPS permanently redirects requests not made over HTTPS to the same URL with the https scheme.
// A request counts as HTTPS when it arrived over TLS or its proxy says so in ForwardedProtoHeader.
//
// In development, NoopAdapter returns and this middleware does nothing.
func ForceHTTPS(env muxbuilder.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get(ForwardedProtoHeader) == "https" {
				h.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}

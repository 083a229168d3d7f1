package middleware

import (
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/kfly8/muxbuilder"
)

// A LogRequestRecord is the shape of the log line LogRequest writes.
type LogRequestRecord struct {
	BodySize       int64  `json:"bodySize"`
	Host           string `json:"host"`
	ID             string `json:"requestId,omitempty"`
	IPAddr         string `json:"ip,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"requestContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// LogRequest logs the request's method, requested URL, originating IP address
// and the response's status and size using the provided [*slog.Logger].
//
// LogRequest scrubs the values for the following query keys:
// - password
//
// If l is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(l *slog.Logger) Adapter {
	if l == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			q := r.URL.Query()
			muxbuilder.Mask(q, "password")
			uri := r.URL.Path
			if enc := q.Encode(); enc != "" {
				uri += "?" + enc
			}

			ip, _ := r.Context().Value(muxbuilder.IpAddrKey).(string)
			rec := LogRequestRecord{
				BodySize:       m.Written,
				Host:           r.Host,
				ID:             RequestIDFromContext(r.Context()),
				IPAddr:         ip,
				Method:         r.Method,
				Path:           r.URL.Path,
				Protocol:       r.Proto,
				Referrer:       r.Referer(),
				ReqContentType: r.Header.Get("Content-Type"),
				Scheme:         r.URL.Scheme,
				Status:         m.Code,
				URI:            uri,
				UserAgent:      r.UserAgent(),
			}

			l.LogAttrs(r.Context(), slog.LevelInfo, "request",
				slog.Attr{Key: muxbuilder.LogKindKey, Value: muxbuilder.HTTPLogKind},
				slog.Int64("bodySize", rec.BodySize),
				slog.String("host", rec.Host),
				slog.String("requestId", rec.ID),
				slog.String("ip", rec.IPAddr),
				slog.String("method", rec.Method),
				slog.String("path", rec.Path),
				slog.String("protocol", rec.Protocol),
				slog.String("referrer", rec.Referrer),
				slog.String("requestContentType", rec.ReqContentType),
				slog.String("scheme", rec.Scheme),
				slog.Int("status", rec.Status),
				slog.String("uri", rec.URI),
				slog.String("userAgent", rec.UserAgent),
				slog.Duration("duration", m.Duration),
			)
		})
	}
}

package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// IdempotencyHeader is the request header carrying the key a POST is deduplicated by.
const IdempotencyHeader = "Idempotency-Key"

// Idempotent makes POST requests carrying the same IdempotencyHeader key run their handler at most once,
// replaying the recorded response to every retry.
// Requests with other methods pass through untouched.
//
// A POST without the header is answered with http.StatusBadRequest.
// For a key cache already holds:
//
//   - while the first request is still being handled, retries get http.StatusConflict
//   - a retry to another URI, or with another body, gets http.StatusUnprocessableEntity
//   - otherwise the recorded status, Content-Type and body are written back
//
// If cache is nil, an in-memory IdemResMap keeping keys for DefaultIdempotencyTTL is used.
//
// See https://tools.ietf.org/id/draft-idempotency-header-01.html
func Idempotent(cache IdempotencyCacher) Adapter {
	if cache == nil {
		cache = NewIdemResMap(DefaultIdempotencyTTL)
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				h.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				http.Error(w, "missing "+IdempotencyHeader+" header", http.StatusBadRequest)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
			sum := sha256.Sum256(body)

			ctx := r.Context()
			res := NewIdemRes(r.URL.RequestURI(), sum[:])
			if prev, claimed := cache.Claim(ctx, key, res); !claimed {
				switch {
				case prev.Status == 0:
					http.Error(w, "request with this key is in progress", http.StatusConflict)
				case prev.URI != r.URL.RequestURI() || !bytes.Equal(prev.Req, sum[:]):
					http.Error(w, "key was used for another request", http.StatusUnprocessableEntity)
				default:
					prev.replay(w)
				}
				return
			}

			var buf bytes.Buffer
			rec := httpsnoop.Wrap(w, httpsnoop.Hooks{
				WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						if res.Status == 0 {
							res.Status = code
						}
						next(code)
					}
				},
				Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(b []byte) (int, error) {
						if res.Status == 0 {
							res.Status = http.StatusOK
						}
						buf.Write(b)
						return next(b)
					}
				},
			})

			h.ServeHTTP(rec, r)

			if res.Status == 0 {
				res.Status = http.StatusOK
			}
			res.Body = buf.Bytes()
			res.ContentType = w.Header().Get("Content-Type")

			// NOTE: the response is recorded even if the client went away mid-request
			cache.Set(context.WithoutCancel(ctx), key, res)
		})
	}
}

// An IdemRes is the response recorded for an idempotency key.
// A zero Status marks a request still being handled.
type IdemRes struct {
	Body        []byte
	ContentType string
	Req         []byte
	Status      int
	URI         string
}

// NewIdemRes constructs an IdemRes for a request to uri whose body hashes to hashedBody.
func NewIdemRes(uri string, hashedBody []byte) IdemRes {
	return IdemRes{URI: uri, Req: hashedBody}
}

func (ir IdemRes) replay(w http.ResponseWriter) {
	if ir.ContentType != "" {
		w.Header().Set("Content-Type", ir.ContentType)
	}
	w.WriteHeader(ir.Status)
	_, _ = w.Write(ir.Body)
}

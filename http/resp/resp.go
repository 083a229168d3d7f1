package resp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
)

var pool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// JSON encodes data and writes it with status.
// Nothing is written if data cannot be encoded.
func JSON(w http.ResponseWriter, status int, data any) error {
	b := pool.Get().(*bytes.Buffer)
	b.Reset()
	defer pool.Put(b)

	if err := json.NewEncoder(b).Encode(data); err != nil {
		return err
	}
	// NOTE: drop the newline json.Encoder terminates each value with
	b.Truncate(b.Len() - 1)

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_, err := b.WriteTo(w)
	return err
}

// Text writes msg as plain text with status.
func Text(w http.ResponseWriter, status int, msg string) error {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, msg)
	return err
}

// NoContent writes http.StatusNoContent.
func NoContent(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

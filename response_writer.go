package inertia

import (
	"bytes"
	"net/http"
)

var _ http.ResponseWriter = (*responseWriter)(nil)

// responseWriter buffers the status code and body written by a handler
// so the middleware can rewrite them before anything reaches the client.
type responseWriter struct {
	w          http.ResponseWriter
	buf        bytes.Buffer
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	//nolint:exhaustruct
	return &responseWriter{w: w}
}

// Header returns the header map of the underlying http.ResponseWriter.
func (rw *responseWriter) Header() http.Header { return rw.w.Header() }

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}

	return rw.buf.Write(b) //nolint:wrapcheck
}

// WriteHeader records the status code without sending it.
// The last recorded code wins.
func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
}

// Empty reports whether the handler produced no response at all.
func (rw *responseWriter) Empty() bool {
	return rw.statusCode == 0 && rw.buf.Len() == 0
}

// flush forwards the recorded status code and buffered body to the
// underlying http.ResponseWriter.
func (rw *responseWriter) flush() {
	if rw.statusCode != 0 {
		rw.w.WriteHeader(rw.statusCode)
	}

	_, _ = rw.w.Write(rw.buf.Bytes())
}

// Package metricsutil pkg/metricsutil/status_response_writer.go
package metricsutil

import (
	"io"
	"net/http"
)

// StatusResponseWriter wraps `http.ResponseWriter` but stores status code
// on call to `WriteHeader` and counts body bytes.
type StatusResponseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

// NewStatusResponseWriter wraps `http.ResponseWriter` constructing `StatusResponseWriter`.
func NewStatusResponseWriter(w http.ResponseWriter) *StatusResponseWriter {
	return &StatusResponseWriter{
		ResponseWriter: w,
	}
}

// WriteHeader implements `http.ResponseWriter` storing the written status code.
func (w *StatusResponseWriter) WriteHeader(statusCode int) {
	if w.statusCode == 0 {
		w.statusCode = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implements `http.ResponseWriter` counting written bytes.
func (w *StatusResponseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// ReadFrom keeps the sendfile path of the wrapped writer available to
// io.Copy callers such as http.ServeContent.
func (w *StatusResponseWriter) ReadFrom(r io.Reader) (int64, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	var n int64
	var err error
	if rf, ok := w.ResponseWriter.(io.ReaderFrom); ok {
		n, err = rf.ReadFrom(r)
	} else {
		n, err = io.Copy(w.ResponseWriter, r)
	}
	w.written += n
	return n, err
}

// Flush implements `http.Flusher` when the wrapped writer does.
func (w *StatusResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the wrapped writer for `http.ResponseController`.
func (w *StatusResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// StatusCode gets status code from the writer.
func (w *StatusResponseWriter) StatusCode() int {
	if w.statusCode == 0 {
		// this is case when `WriteHeader` wasn't called explicitly,
		// so we consider it 200
		return http.StatusOK
	}

	return w.statusCode
}

// BytesWritten returns the number of body bytes written so far.
func (w *StatusResponseWriter) BytesWritten() int64 {
	return w.written
}

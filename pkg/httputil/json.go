// Package httputil pkg/httputil/json.go
package httputil

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigFastest

// WriteJSON writes a json object on a http.ResponseWriter with the given code.
// Errors are rendered as {"error": "..."}.
func WriteJSON(w http.ResponseWriter, r *http.Request, code int, v interface{}) {
	if err, ok := v.(error); ok {
		v = Error{Error: err.Error()}
	}

	b, err := json.Marshal(v)
	if err != nil {
		GetLogger(r).WithError(err).Error("Failed to encode json response.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, err := w.Write(b); err != nil {
		GetLogger(r).WithError(err).Debug("Failed to write json response.")
	}
}

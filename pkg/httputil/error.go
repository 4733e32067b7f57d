// Package httputil pkg/httputil/error.go
package httputil

// Error is the object returned to the client when there's an error.
type Error struct {
	Error string `json:"error"`
}

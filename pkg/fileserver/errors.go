package fileserver

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"syscall"
)

// Request errors. Each maps to one HTTP status in statusFromError.
var (
	ErrNotFound          = errors.New("file not found")
	ErrForbidden         = errors.New("permission denied")
	ErrBadRequest        = errors.New("bad request path")
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrNotDir            = errors.New("base path is not a directory")
)

// classifyFSError turns an os/fs error into one of the request errors,
// keeping the original error wrapped.
func classifyFSError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden), errors.Is(err, ErrBadRequest):
		return err
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.ENAMETOOLONG):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrForbidden, err)
	default:
		return err
	}
}

// statusFromError returns the status code and the client facing message.
func statusFromError(r *http.Request, err error) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "File not found"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "No permission to access this resource"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "Bad request path"
	case errors.Is(err, ErrUnsupportedMethod):
		return http.StatusNotImplemented, fmt.Sprintf("Unsupported method ('%s')", r.Method)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

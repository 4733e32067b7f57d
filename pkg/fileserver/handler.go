package fileserver

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/skycoin/skyserve/internal/fsmetrics"
	"github.com/skycoin/skyserve/pkg/httputil"
	"github.com/skycoin/skyserve/pkg/metricsutil"
)

// Handler serves GET and HEAD requests from a base directory.
// It holds no per-request state and is safe for concurrent use.
type Handler struct {
	res        *resolver
	indexFiles []string
	metrics    fsmetrics.Metrics
}

// NewHandler creates a Handler for conf.Dir. The directory must exist.
func NewHandler(conf Config, m fsmetrics.Metrics) (*Handler, error) {
	if err := conf.Check(); err != nil {
		return nil, err
	}

	res, err := newResolver(conf.Dir)
	if err != nil {
		return nil, err
	}

	if m == nil {
		m = fsmetrics.NewEmpty()
	}

	return &Handler{
		res:        res,
		indexFiles: append([]string(nil), conf.IndexFiles...),
		metrics:    m,
	}, nil
}

// Root returns the absolute base directory.
func (h *Handler) Root() string {
	return h.res.root
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		h.handleError(w, r, fmt.Errorf("%w: %s", ErrUnsupportedMethod, r.Method))
		return
	}

	upath := r.URL.Path
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}

	full, err := h.res.resolve(upath)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	fi, err := os.Stat(full)
	if err != nil {
		h.handleError(w, r, classifyFSError(err))
		return
	}

	if fi.IsDir() {
		h.serveDir(w, r, upath, full)
		return
	}

	// A trailing slash names a directory; "file.txt/" is not one.
	if strings.HasSuffix(upath, "/") {
		h.handleError(w, r, fmt.Errorf("%w: %s is not a directory", ErrNotFound, upath))
		return
	}

	h.serveFile(w, r, full, fi)
}

func (h *Handler) serveDir(w http.ResponseWriter, r *http.Request, upath, full string) {
	if !strings.HasSuffix(upath, "/") {
		// Built from the cleaned path: a raw "//host/.." prefix would make
		// Location a protocol-relative URL.
		clean := path.Clean(upath)
		if clean != "/" {
			clean += "/"
		}
		target := (&url.URL{Path: clean}).EscapedPath()
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		w.Header().Set("Location", target)
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(http.StatusMovedPermanently)
		return
	}

	for _, name := range h.indexFiles {
		index, err := h.res.resolve(path.Join(upath, name))
		if err != nil {
			continue
		}
		fi, err := os.Stat(index)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		h.serveFile(w, r, index, fi)
		return
	}

	entries, err := readEntries(full)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	body, err := renderListing(upath, entries)
	if err != nil {
		h.handleError(w, r, fmt.Errorf("render listing: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	h.metrics.RecordListing()

	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		h.log(r).WithError(err).Debug("Failed to write directory listing.")
	}
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, full string, fi os.FileInfo) {
	// Devices, sockets and pipes are never served; opening a FIFO would block.
	if !fi.Mode().IsRegular() {
		h.handleError(w, r, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, fi.Name()))
		return
	}

	f, err := os.Open(full) //nolint:gosec
	if err != nil {
		h.handleError(w, r, classifyFSError(err))
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.log(r).WithError(err).Debug("Failed to close file.")
		}
	}()

	w.Header().Set("Content-Type", ContentType(fi.Name()))

	srw := metricsutil.NewStatusResponseWriter(w)
	http.ServeContent(srw, r, fi.Name(), fi.ModTime(), f)

	// HEAD and 304 carry no body; ranges count what was sent.
	if r.Method == http.MethodGet {
		switch srw.StatusCode() {
		case http.StatusOK, http.StatusPartialContent:
			h.metrics.RecordFile(srw.BytesWritten())
		}
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromError(r, err)

	log := h.log(r).WithError(err).WithField("path", r.URL.Path)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		log.Warnf("%d: %s", status, msg)
	} else {
		log.Debugf("%d: %s", status, msg)
	}
	h.metrics.RecordError(status)

	body := renderError(status, msg)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		h.log(r).WithError(err).Debug("Failed to write error response.")
	}
}

func (h *Handler) log(r *http.Request) logrus.FieldLogger {
	return httputil.GetLogger(r)
}

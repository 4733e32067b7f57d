package fileserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/skycoin/skyserve/pkg/httputil"
	"github.com/skycoin/skyserve/pkg/metricsutil"
)

// APIOptions toggles the optional middlewares of the API.
type APIOptions struct {
	LogRequests   bool
	EnableMetrics bool
	EnableCORS    bool
}

// API register all the API endpoints.
// It implements a net/http.Handler.
type API struct {
	http.Handler

	reqsInFlightCountMiddleware *metricsutil.RequestsInFlightCountMiddleware
}

// NewAPI wraps the file handler with the request middlewares.
// Every path, including "/", is passed to the file handler.
func NewAPI(log logrus.FieldLogger, files http.Handler, opts APIOptions) *API {
	api := &API{
		reqsInFlightCountMiddleware: metricsutil.NewRequestsInFlightCountMiddleware(),
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.LogRequests && log != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	}
	r.Use(middleware.Recoverer)
	if opts.EnableMetrics {
		r.Use(api.reqsInFlightCountMiddleware.Handle)
		r.Use(metricsutil.RequestDurationMiddleware)
	}
	r.Use(httputil.SetLoggerMiddleware(log))
	if opts.EnableCORS {
		r.Use(cors.AllowAll().Handler)
	}

	r.Handle("/*", files)

	api.Handler = r
	return api
}

// Package httputil pkg/httputil/log.go
package httputil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/skycoin/skyserve/pkg/logging"
)

type ctxKeyLogger int

// LoggerKey defines logger HTTP context key.
const LoggerKey ctxKeyLogger = -1

// fallbackLogger serves requests that never went through SetLoggerMiddleware.
var fallbackLogger = func() *logging.MasterLogger {
	l := logging.NewMasterLogger()
	l.SetLevel(logrus.InfoLevel)
	return l
}()

// GetLogger returns logger from HTTP context.
func GetLogger(r *http.Request) logrus.FieldLogger {
	if log, ok := r.Context().Value(LoggerKey).(logrus.FieldLogger); ok && log != nil {
		return log
	}

	return fallbackLogger
}

// SetLoggerMiddleware sets logger to context of HTTP requests.
// The logger carries the chi request ID when one is present.
func SetLoggerMiddleware(log logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if log != nil {
				l := log
				if reqID := middleware.GetReqID(ctx); reqID != "" {
					l = log.WithField("RequestID", reqID)
				}
				ctx = context.WithValue(ctx, LoggerKey, l)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

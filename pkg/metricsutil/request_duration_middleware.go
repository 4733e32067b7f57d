// Package metricsutil pkg/metricsutil/request_duration_middleware.go
package metricsutil

import (
	"fmt"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// RequestDurationHistogram is the histogram fed by RequestDurationMiddleware.
const RequestDurationHistogram = "fileserver_request_duration_seconds"

// RequestDurationMiddleware is a request duration tracking middleware.
// Requests are labelled by method and status class (2xx, 3xx, ...) to keep
// the series count bounded.
func RequestDurationMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		srw := NewStatusResponseWriter(w)

		start := time.Now()
		next.ServeHTTP(srw, r)

		name := fmt.Sprintf(`%s{method=%q,status=%q}`, RequestDurationHistogram, r.Method, statusClass(srw.StatusCode()))
		metrics.GetOrCreateHistogram(name).UpdateDuration(start)
	}

	return http.HandlerFunc(fn)
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return fmt.Sprintf("%dxx", code/100)
}

package metricsutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStatusResponseWriter(t *testing.T) {
	t.Run("implicit_ok", func(t *testing.T) {
		srw := NewStatusResponseWriter(httptest.NewRecorder())
		_, err := srw.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, srw.StatusCode())
		require.Equal(t, int64(5), srw.BytesWritten())
	})

	t.Run("explicit_status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		srw := NewStatusResponseWriter(rr)
		srw.WriteHeader(http.StatusNotFound)
		n, err := srw.ReadFrom(strings.NewReader("File not found"))
		require.NoError(t, err)
		require.Equal(t, int64(14), n)
		require.Equal(t, http.StatusNotFound, srw.StatusCode())
		require.Equal(t, "File not found", rr.Body.String())
	})
}

func TestRequestsInFlightCountMiddleware(t *testing.T) {
	m := NewRequestsInFlightCountMiddleware()

	var during int64
	h := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		during = m.InFlight()
		w.WriteHeader(http.StatusOK)
	}))

	before := m.InFlight()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, before+1, during)
	require.Equal(t, before, m.InFlight())
}

func TestNewMetricsRouter(t *testing.T) {
	NewRequestsInFlightCountMiddleware()

	h := RequestDurationMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	r := NewMetricsRouter(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), RequestDurationHistogram+"_bucket")
	require.Contains(t, string(body), `method="GET",status="4xx"`)
	require.Contains(t, string(body), DefaultRequestsInFlightGauge)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestStatusClass(t *testing.T) {
	for code, want := range map[int]string{
		http.StatusOK:                  "2xx",
		http.StatusPartialContent:      "2xx",
		http.StatusMovedPermanently:    "3xx",
		http.StatusNotFound:            "4xx",
		http.StatusNotImplemented:      "5xx",
		0:                              "other",
		999:                            "other",
	} {
		require.Equal(t, want, statusClass(code), code)
	}
}

func TestServeHTTPMetrics(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	t.Run("disabled", func(t *testing.T) {
		require.NoError(t, ServeHTTPMetrics(context.Background(), log, ""))
	})

	t.Run("stops_on_cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- ServeHTTPMetrics(ctx, log, "127.0.0.1:0")
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("metrics server did not stop")
		}
	})
}

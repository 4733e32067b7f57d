// Package httputil pkg/httputil/health.go
package httputil

import (
	"time"

	"github.com/skycoin/skyserve/pkg/buildinfo"
)

// HealthPath is the route of the health endpoint.
const HealthPath = "/health"

// HealthCheckResponse is struct of /health endpoint
type HealthCheckResponse struct {
	BuildInfo *buildinfo.Info `json:"build_info,omitempty"`
	StartedAt time.Time       `json:"started_at"`
	Dir       string          `json:"dir,omitempty"`
	Addr      string          `json:"addr,omitempty"`
}

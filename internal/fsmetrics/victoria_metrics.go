// Package fsmetrics internal/fsmetrics/victoria_metrics.go
package fsmetrics

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// VictoriaMetrics implements `Metrics` using `VictoriaMetrics`.
type VictoriaMetrics struct {
	filesServed    *metrics.Counter
	bytesServed    *metrics.Counter
	listingsServed *metrics.Counter
}

// NewVictoriaMetrics returns the Victoria Metrics implementation of `Metrics`.
func NewVictoriaMetrics() *VictoriaMetrics {
	return &VictoriaMetrics{
		filesServed:    metrics.GetOrCreateCounter("fileserver_files_served_total"),
		bytesServed:    metrics.GetOrCreateCounter("fileserver_bytes_served_total"),
		listingsServed: metrics.GetOrCreateCounter("fileserver_listings_served_total"),
	}
}

// RecordFile implements `Metrics`.
func (m *VictoriaMetrics) RecordFile(size int64) {
	m.filesServed.Inc()
	if size > 0 {
		m.bytesServed.Add(int(size))
	}
}

// RecordListing implements `Metrics`.
func (m *VictoriaMetrics) RecordListing() {
	m.listingsServed.Inc()
}

// RecordError implements `Metrics`.
func (m *VictoriaMetrics) RecordError(status int) {
	metrics.GetOrCreateCounter(fmt.Sprintf("fileserver_errors_total{code=\"%d\"}", status)).Inc()
}

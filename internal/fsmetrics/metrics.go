// Package fsmetrics internal/fsmetrics/metrics.go
package fsmetrics

// Metrics collects file server specific metrics.
type Metrics interface {
	RecordFile(size int64)
	RecordListing()
	RecordError(status int)
}

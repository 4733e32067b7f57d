// Package fsmetrics internal/fsmetrics/empty.go
package fsmetrics

// NewEmpty constructs new empty metrics.
func NewEmpty() Empty {
	return Empty{}
}

// Empty implements `Metrics`, but does nothing.
type Empty struct{}

// RecordFile implements `Metrics`.
func (Empty) RecordFile(int64) {}

// RecordListing implements `Metrics`.
func (Empty) RecordListing() {}

// RecordError implements `Metrics`.
func (Empty) RecordError(int) {}

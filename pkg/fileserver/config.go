// Package fileserver serves a directory tree over HTTP.
//
// Regular files are returned with a content type taken from an explicit
// extension table, directories are answered with their index file or a
// generated HTML listing, and request paths can never resolve outside the
// base directory.
package fileserver

import (
	"errors"
	"fmt"
	"time"
)

// Defaults of the static file server.
const (
	DefaultPort              = 8000
	DefaultDir               = "."
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
)

// DefaultIndexFiles are looked up, in order, when a directory is requested.
var DefaultIndexFiles = []string{"index.html", "index.htm"}

// Config errors.
var (
	ErrInvalidPort  = errors.New("port must be within 0-65535")
	ErrEmptyDir     = errors.New("base directory cannot be empty")
	ErrNegativeConn = errors.New("max connections cannot be negative")
)

// Config configures a file server. It is passed by value and never mutated
// after the server is constructed.
type Config struct {
	Port              int
	Dir               string
	IndexFiles        []string
	MaxConns          int // 0 means unlimited
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultConfig returns the config serving "." on port 8000.
func DefaultConfig() Config {
	return Config{
		Port:              DefaultPort,
		Dir:               DefaultDir,
		IndexFiles:        append([]string(nil), DefaultIndexFiles...),
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		ShutdownTimeout:   DefaultShutdownTimeout,
	}
}

// Check validates the config.
func (c Config) Check() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.Dir == "" {
		return ErrEmptyDir
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeConn, c.MaxConns)
	}
	return nil
}

// Addr is the listen address, on all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// URL is the address users are told to open.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

func (c Config) clone() Config {
	c.IndexFiles = append([]string(nil), c.IndexFiles...)
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	return c
}

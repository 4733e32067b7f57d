//go:build !windows
// +build !windows

// Package cmdutil pkg/cmdutil/signal_unix.go
package cmdutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// listenSignals lists the signals that stop a running service.
// SIGHUP is included so closing the controlling terminal releases the listener.
func listenSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGQUIT, unix.SIGHUP}
}

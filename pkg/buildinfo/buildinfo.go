// Package buildinfo pkg/buildinfo/buildinfo.go
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

const unknown = "unknown"

// Set with -ldflags "-X github.com/skycoin/skyserve/pkg/buildinfo.version=..."
var (
	version = unknown
	commit  = unknown
	date    = unknown
)

// Version returns version from git describe.
// Falls back to the main module version recorded by the go tool.
func Version() string {
	if version != unknown {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// Commit returns commit hash.
func Commit() string {
	if commit != unknown {
		return commit
	}
	if rev := setting("vcs.revision"); rev != "" {
		return rev
	}
	return commit
}

// Date returns date of build in RFC3339 format.
func Date() string {
	if date != unknown {
		return date
	}
	if t := setting("vcs.time"); t != "" {
		return t
	}
	return date
}

func setting(key string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// Get returns build info summary.
func Get() *Info {
	return &Info{
		Version: Version(),
		Commit:  Commit(),
		Date:    Date(),
	}
}

// Info is build info summary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// WriteTo writes build info summary to io.Writer.
func (info *Info) WriteTo(w io.Writer) (int64, error) {
	msg := fmt.Sprintf("Version %q built on %q against commit %q\n", info.Version, info.Date, info.Commit)
	n, err := w.Write([]byte(msg))
	return int64(n), err
}

package fileserver

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testTree builds the fixture:
//
//	base/hello.txt
//	base/data.qqq
//	base/.hidden
//	base/site/index.html
//	base/docs/{a.md,B.txt,<b>.txt,sub/}
//	outside/secret.txt
func testTree(t *testing.T) (base, outside string) {
	t.Helper()

	tmp := t.TempDir()
	base = filepath.Join(tmp, "base")
	outside = filepath.Join(tmp, "outside")

	files := map[string]string{
		"base/hello.txt":       "hello world\n",
		"base/data.qqq":        "\x00\x01\x02",
		"base/.hidden":         "dotfile",
		"base/site/index.html": "<h1>Hi</h1>",
		"base/docs/a.md":       "# a",
		"base/docs/B.txt":      "b",
		"outside/secret.txt":   "root:x:0:0",
	}
	if runtime.GOOS != "windows" {
		files["base/docs/<b>.txt"] = "angle"
	}
	for name, body := range files {
		p := filepath.Join(tmp, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(base, "docs", "sub"), 0o750))

	return base, outside
}

// symlinkOrSkip creates a symlink or skips the test where that is not permitted.
func symlinkOrSkip(t *testing.T, oldname, newname string) {
	t.Helper()
	if err := os.Symlink(oldname, newname); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}

func testConfig(dir string) Config {
	conf := DefaultConfig()
	conf.Port = 0
	conf.Dir = dir
	return conf
}

func newTestHandler(t *testing.T, dir string, m *recordingMetrics) *Handler {
	t.Helper()

	var h *Handler
	var err error
	if m == nil {
		h, err = NewHandler(testConfig(dir), nil)
	} else {
		h, err = NewHandler(testConfig(dir), m)
	}
	require.NoError(t, err)
	return h
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type recordingMetrics struct {
	mu       sync.Mutex
	files    int
	bytes    int64
	listings int
	errors   map[int]int
}

func (m *recordingMetrics) RecordFile(size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files++
	m.bytes += size
}

func (m *recordingMetrics) RecordListing() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings++
}

func (m *recordingMetrics) RecordError(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errors == nil {
		m.errors = make(map[int]int)
	}
	m.errors[status]++
}

package fileserver

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// resolver maps URL paths onto the base directory.
//
// Symlinks are followed only while their target stays inside the base.
// Hidden files are served like any other file. Name matching is whatever
// the host filesystem does; no case folding happens here.
type resolver struct {
	root string // absolute, symlinks evaluated
}

func newResolver(dir string) (*resolver, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory %q: %w", dir, err)
	}

	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory %q: %w", dir, err)
	}

	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat base directory %q: %w", dir, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, root)
	}

	return &resolver{root: root}, nil
}

// resolve returns the real path of urlPath under the base directory.
//
// "." and ".." segments are normalized away before the lookup, so traversal
// attempts end at the base directory rather than above it.
func (rs *resolver) resolve(urlPath string) (string, error) {
	if strings.IndexByte(urlPath, 0) >= 0 {
		return "", ErrBadRequest
	}

	clean := path.Clean("/" + urlPath)

	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	for _, p := range parts {
		if filepath.Separator != '/' && strings.ContainsRune(p, filepath.Separator) {
			return "", ErrNotFound
		}
		if filepath.VolumeName(p) != "" {
			return "", ErrNotFound
		}
	}

	full := filepath.Join(rs.root, filepath.FromSlash(clean))
	if !rs.contains(full) {
		return "", ErrNotFound
	}

	target, err := filepath.EvalSymlinks(full)
	if err != nil {
		return "", classifyFSError(err)
	}
	if !rs.contains(target) {
		return "", fmt.Errorf("%w: %s leaves the base directory", ErrNotFound, clean)
	}

	return target, nil
}

func (rs *resolver) contains(p string) bool {
	if p == rs.root {
		return true
	}
	prefix := rs.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

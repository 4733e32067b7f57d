package fileserver

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const listingTimeFormat = "2006-01-02 15:04"

var listingTmpl = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{range .Entries}}<li><a href="{{.Link}}">{{.Display}}</a>{{if .Size}} <small>{{.Size}}</small>{{end}} <small>{{.ModTime}}</small></li>
{{end}}</ul>
<hr>
</body>
</html>
`))

// EntryKind tells files, directories and symlinks apart in a listing.
type EntryKind int

// Entry kinds.
const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
)

// Entry is one line of a directory listing.
type Entry struct {
	Name    string
	Display string // dirs end in "/", symlinks (to dirs too) in "@"
	Link    string // relative, escaped
	Size    string // empty for directories
	ModTime string
	Kind    EntryKind
}

type listingPage struct {
	Path    string
	Entries []Entry
}

// readEntries lists dir sorted case-insensitively by name.
func readEntries(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, classifyFSError(err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		entries = append(entries, newEntry(dir, de.Name(), info))
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if a != b {
			return a < b
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func newEntry(dir, name string, info os.FileInfo) Entry {
	e := Entry{
		Name:    name,
		Display: name,
		ModTime: modTime(info.ModTime()),
		Kind:    KindFile,
	}

	isDir := info.IsDir()
	if info.Mode()&os.ModeSymlink != 0 {
		e.Kind = KindSymlink
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && fi.IsDir() {
			isDir = true
		}
	} else if isDir {
		e.Kind = KindDir
	}

	link := name
	if isDir {
		e.Display += "/"
		link += "/"
	} else {
		e.Size = humanize.Bytes(uint64(info.Size()))
	}
	if e.Kind == KindSymlink {
		e.Display = name + "@"
	}

	// url.URL keeps names such as "a:b" from being read as a scheme.
	e.Link = (&url.URL{Path: link}).String()

	return e
}

// renderListing renders the listing page for the URL path urlPath.
func renderListing(urlPath string, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := listingTmpl.Execute(&buf, listingPage{Path: urlPath, Entries: entries}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var errorTmpl = template.Must(template.New("error").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Error response</title>
</head>
<body>
<h1>Error response</h1>
<p>Error code: {{.Code}}</p>
<p>Message: {{.Message}}.</p>
<p>Error code explanation: {{.Code}} - {{.Explain}}.</p>
</body>
</html>
`))

type errorPage struct {
	Code    int
	Message string
	Explain string
}

func renderError(code int, msg string) []byte {
	var buf bytes.Buffer
	if err := errorTmpl.Execute(&buf, errorPage{Code: code, Message: msg, Explain: http.StatusText(code)}); err != nil {
		return []byte(msg)
	}
	return buf.Bytes()
}

func modTime(t time.Time) string {
	return t.Format(listingTimeFormat)
}

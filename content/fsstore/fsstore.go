// Package fsstore is the default content.Source: a filesystem root with
// pre-gzipped sibling files.
//
// Grounded on the original FileSystemAdapter/FileHandle
// (file_system.rs): strip a single leading '/' from the URL, join under
// the root, and when the caller accepts gzip, try "<relative>.gz" first —
// reporting the *original* file's mtime with the *gzipped* file's size —
// before falling back to the plain file.
//
// This package performs no path-traversal hardening beyond the join
// itself; a malicious URL containing ".." can escape the root. That is a
// latent issue, not a contract of this package — callers serving
// untrusted URLs should sanitize before calling Find.
package fsstore

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sblundy/static2/content"
)

// Store resolves URLs under Root.
type Store struct {
	Root string
}

// New returns a Store rooted at root.
func New(root string) *Store {
	return &Store{Root: root}
}

var _ content.Source = (*Store)(nil)

func (s *Store) Find(url string, acceptsGzip bool) (content.Handle, bool) {
	rel := strings.TrimPrefix(url, "/")
	plainPath := filepath.Join(s.Root, rel)

	if acceptsGzip {
		if h, ok := s.findGzipped(plainPath); ok {
			return h, true
		}
	}

	plainInfo, err := os.Stat(plainPath)
	if err != nil {
		return nil, false
	}

	f, err := os.Open(plainPath)
	if err != nil {
		return nil, false
	}

	return &fileHandle{
		file:    f,
		size:    plainInfo.Size(),
		modTime: plainInfo.ModTime().UTC(),
		gzipped: false,
	}, true
}

func (s *Store) findGzipped(plainPath string) (content.Handle, bool) {
	plainInfo, err := os.Stat(plainPath)
	if err != nil {
		return nil, false
	}

	gzPath := plainPath + ".gz"
	gzInfo, err := os.Stat(gzPath)
	if err != nil {
		return nil, false
	}

	f, err := os.Open(gzPath)
	if err != nil {
		return nil, false
	}

	return &fileHandle{
		file:    f,
		size:    gzInfo.Size(),
		modTime: plainInfo.ModTime().UTC(),
		gzipped: true,
	}, true
}

type fileHandle struct {
	file    *os.File
	size    int64
	modTime time.Time
	gzipped bool
}

var _ content.Handle = (*fileHandle)(nil)

func (h *fileHandle) Len() int64         { return h.size }
func (h *fileHandle) ModTime() time.Time { return h.modTime }
func (h *fileHandle) Gzipped() bool      { return h.gzipped }

func (h *fileHandle) IsOlderOrEqual(t time.Time) bool {
	return !h.modTime.After(t)
}

func (h *fileHandle) WriteTo(w io.Writer) (int64, error) {
	return io.Copy(w, h.file)
}

func (h *fileHandle) Close() error {
	return h.file.Close()
}

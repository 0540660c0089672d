package fsstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindPlainFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	h, ok := s.Find("/index.html", false)
	if !ok {
		t.Fatal("expected to find index.html")
	}
	defer h.Close()

	if h.Gzipped() {
		t.Fatal("expected plain file, not gzipped")
	}
	if h.Len() != 5 {
		t.Fatalf("unexpected length: %d", h.Len())
	}

	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello" {
		t.Fatalf("unexpected body: %q", buf.String())
	}
}

func TestFindMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, ok := s.Find("/missing.html", false); ok {
		t.Fatal("expected missing file to be absent")
	}
}

func TestFindPrefersGzipVariant(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "index.html")
	gz := plain + ".gz"

	if err := os.WriteFile(plain, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gz, []byte("gz"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	h, ok := s.Find("/index.html", true)
	if !ok {
		t.Fatal("expected to find gzip variant")
	}
	defer h.Close()

	if !h.Gzipped() {
		t.Fatal("expected gzipped handle")
	}
	if h.Len() != 2 {
		t.Fatalf("expected gzip file size, got %d", h.Len())
	}

	plainInfo, err := os.Stat(plain)
	if err != nil {
		t.Fatal(err)
	}
	if !h.ModTime().Equal(plainInfo.ModTime().UTC()) {
		t.Fatal("expected gzip handle to report the plain file's mtime")
	}
}

func TestFindFallsBackWithoutGzipAccept(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "index.html")
	if err := os.WriteFile(plain, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(plain+".gz", []byte("gz"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	h, ok := s.Find("/index.html", false)
	if !ok {
		t.Fatal("expected to find plain file")
	}
	defer h.Close()

	if h.Gzipped() {
		t.Fatal("expected plain file when client doesn't accept gzip")
	}
}

func TestIsOlderOrEqual(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(plain, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	h, ok := s.Find("/a.txt", false)
	if !ok {
		t.Fatal("expected to find a.txt")
	}
	defer h.Close()

	future := h.ModTime().Add(time.Hour)
	if !h.IsOlderOrEqual(future) {
		t.Fatal("expected file to be older than a future instant")
	}

	past := h.ModTime().Add(-time.Hour)
	if h.IsOlderOrEqual(past) {
		t.Fatal("expected file not to be older than a past instant")
	}
}

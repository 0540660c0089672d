package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsServable(t *testing.T) {
	cfg := Default()
	if cfg.Workers <= 0 {
		t.Fatalf("expected a positive default worker count, got %d", cfg.Workers)
	}
	if cfg.TLS.Enabled() {
		t.Fatal("expected TLS to be disabled by default")
	}
}

func TestLoadWithEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("expected Load(\"\") to equal Default(), got %+v", cfg)
	}
}

func TestLoadOverlaysYAMLOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "static2.yaml")
	yaml := "root: /srv/www\nport: 9999\ntls:\n  certPath: /etc/cert.pem\n  keyPath: /etc/key.pem\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/srv/www" || cfg.Port != 9999 {
		t.Fatalf("unexpected overlay result: %+v", cfg)
	}
	if !cfg.TLS.Enabled() {
		t.Fatal("expected TLS to be enabled once both paths are set")
	}
	if cfg.Address != Default().Address {
		t.Fatalf("expected address to keep its default, got %q", cfg.Address)
	}
}

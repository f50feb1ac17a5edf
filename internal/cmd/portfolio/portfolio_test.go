package portfolio

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/paul-wang1/portfolio/internal/services/portfolio/content"
	"go.uber.org/zap"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Watch {
		t.Fatal("Watch = true, want false")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9000",
		"-content-dir", "site",
		"-watch",
		"-assets-dir", "public",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" || cfg.ContentDir != "site" || !cfg.Watch || cfg.AssetsDir != "public" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfigWatchRequiresContentDir(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-watch"}); err == nil {
		t.Fatal("expected error for watch without content dir")
	}
}

func TestParseExportConfig(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cfg, err := ParseExportConfig(fs, []string{"-out", "public_html", "-strict"})
	if err != nil {
		t.Fatalf("ParseExportConfig() error = %v", err)
	}
	if cfg.OutDir != "public_html" || !cfg.Strict {
		t.Fatalf("cfg = %+v", cfg)
	}

	fs = flag.NewFlagSet("export", flag.ContinueOnError)
	cfg, err = ParseExportConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseExportConfig() error = %v", err)
	}
	if cfg.OutDir != "dist" {
		t.Fatalf("OutDir = %q, want %q", cfg.OutDir, "dist")
	}
}

func TestOpenStoreUsesEmbeddedContent(t *testing.T) {
	t.Parallel()

	store, watched, err := openStore("", false, zap.NewNop())
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if watched != nil {
		t.Fatal("expected no watched store")
	}
	if len(store.Portfolio().Projects) == 0 {
		t.Fatal("expected embedded projects")
	}
}

func writeContent(t *testing.T, dir string) {
	t.Helper()
	err := os.CopyFS(dir, content.Embedded())
	if err != nil {
		t.Fatalf("copy content: %v", err)
	}
}

func TestOpenStoreLoadsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeContent(t, dir)

	store, watched, err := openStore(dir, false, zap.NewNop())
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if watched != nil {
		t.Fatal("expected no watched store")
	}
	if store.Portfolio().Personal.Name == "" {
		t.Fatal("expected personal info")
	}

	store, watched, err = openStore(dir, true, zap.NewNop())
	if err != nil {
		t.Fatalf("openStore(watch) error = %v", err)
	}
	if watched == nil || store != content.Store(watched) {
		t.Fatal("expected watched store")
	}
}

func TestOpenStoreRejectsMissingDirectory(t *testing.T) {
	t.Parallel()

	if _, _, err := openStore(filepath.Join(t.TempDir(), "missing"), false, zap.NewNop()); err == nil {
		t.Fatal("expected error")
	}
}

// ABOUTME: Tests for golf configuration management.
// ABOUTME: Covers load, save, defaults, metadata path, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
	if filepath.Base(got) != "golf" {
		t.Errorf("GetDataDir() = %q, want a golf directory", got)
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/golf-test"}
	if got := cfg.GetDataDir(); got != "/tmp/golf-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/golf-test")
	}
}

func TestGetMetadataFileDefault(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/golf-test"}
	want := "/tmp/golf-test/club_metadata.json"
	if got := cfg.GetMetadataFile(); got != want {
		t.Errorf("GetMetadataFile() = %q, want %q", got, want)
	}
}

func TestGetMetadataFileExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/golf-test", MetadataFile: "/elsewhere/meta.json"}
	if got := cfg.GetMetadataFile(); got != "/elsewhere/meta.json" {
		t.Errorf("GetMetadataFile() = %q, want %q", got, "/elsewhere/meta.json")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/golf")
	want := filepath.Join(home, "data/golf")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/golf\") = %q, want %q", got, want)
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/golf-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "golf-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{DataDir: "/tmp/golf-roundtrip", MetadataFile: "/tmp/meta.json"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.MetadataFile != cfg.MetadataFile {
		t.Errorf("MetadataFile = %q, want %q", loaded.MetadataFile, cfg.MetadataFile)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "golf")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed config")
	}
}

func TestOpenStoreCreatesStore(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	if store == nil {
		t.Fatal("OpenStore() returned nil store")
	}
}

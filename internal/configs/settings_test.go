package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	settings, err := loadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("Expected defaults, got: %+v", settings)
	}
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "interactive = false\ncompression_level = 9\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	settings, err := loadFrom(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if settings.Interactive {
		t.Error("Expected interactive to be false")
	}
	if settings.CompressionLevel != 9 {
		t.Errorf("Expected compression level 9, got: %d", settings.CompressionLevel)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("compression_level = 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	settings, err := loadFrom(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	// Unnamed keys keep their defaults.
	if !settings.Interactive {
		t.Error("Expected interactive to keep its default of true")
	}
	if settings.CompressionLevel != 1 {
		t.Errorf("Expected compression level 1, got: %d", settings.CompressionLevel)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("interactive = maybe\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("Expected error for malformed TOML, got nil")
	}
}

func TestLoadFromRejectsBadCompressionLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("compression_level = 42\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("Expected error for out-of-range compression level, got nil")
	}
}

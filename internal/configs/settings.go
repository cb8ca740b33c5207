package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/flate"
)

// Settings holds user-level defaults for the CLI.
type Settings struct {
	// Interactive enables per-file metadata prompting during create.
	// The --no-interactive flag overrides it.
	Interactive bool `toml:"interactive"`

	// CompressionLevel is the deflate level for entry content:
	// 0 (store) through 9 (best), or -1 for the library default.
	CompressionLevel int `toml:"compression_level"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Interactive:      true,
		CompressionLevel: flate.DefaultCompression,
	}
}

// Load reads the user's config file, if any, on top of the defaults.
// A missing file yields the defaults; a malformed file is an error.
func Load() (Settings, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		// No resolvable config dir (unset HOME); fall back to defaults.
		return DefaultSettings(), nil
	}
	return loadFrom(filepath.Join(dir, "zipper", "config.toml"))
}

func loadFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return settings, fmt.Errorf("loading config %s: %w", path, err)
	}

	if settings.CompressionLevel < flate.DefaultCompression || settings.CompressionLevel > flate.BestCompression {
		return settings, fmt.Errorf("config %s: compression_level must be between -1 and 9, got %d", path, settings.CompressionLevel)
	}

	return settings, nil
}

// Package configs loads optional user settings for the zipper CLI.
//
// Settings live in config.toml under the user's zipper config directory
// (typically ~/.config/zipper on Linux). Every setting has a default, so
// a missing file is not an error; a present file overrides only the keys
// it names. Command-line flags take precedence over the file.
package configs

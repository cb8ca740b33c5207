// Package metadata encodes and decodes the JSON metadata that zipper
// stores in ZIP comment fields.
//
// Metadata values are dynamic JSON trees: the encoding/json mapping of
// map[string]any, []any, string, float64, bool, and nil. Encode produces
// ASCII-only JSON so the bytes survive tools that mishandle raw UTF-8 in
// comment fields; Decode accepts any byte sequence, falling back to a
// {"comment": <text>} wrapper for comments written by other tools.
//
// The package also parses user-supplied metadata arguments for the CLI:
// inline JSON text, or a path to a .json file (which may contain JSONC
// comments and trailing commas).
package metadata

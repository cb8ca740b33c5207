// Package terminal provides interactive prompt helpers for the CLI.
//
// Prompts write to stderr so piped stdout stays clean, and read from the
// reader the caller supplies, which keeps the flow testable without a TTY.
package terminal

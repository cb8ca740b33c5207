package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	zerrors "github.com/Yobazuk/zipper/internal/errors"
	"github.com/Yobazuk/zipper/internal/metadata"
	"github.com/Yobazuk/zipper/internal/terminal"
	"github.com/Yobazuk/zipper/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not in
// verbose or debug mode. Returns the spinner and a function that should be
// deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup
// function automatically calls ui.EnsureNewline() on the final message before
// printing it. This ensures consistent output formatting across all commands.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// validateArchivePath rejects archive paths without a .zip extension before
// any archive handle is opened.
func validateArchivePath(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".zip" {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" Archive file must have .zip extension, got: "+ui.Path.Sprint(path))
		return fmt.Errorf("%w: %s", zerrors.ErrInvalidExtension, path)
	}
	return nil
}

// parseMetadataFlag parses a metadata flag value, printing usage guidance on
// malformed input before returning the error.
func parseMetadataFlag(value string) (any, error) {
	meta, err := metadata.ParseArgument(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" Invalid JSON metadata format. Please use valid JSON with double quotes.")
		fmt.Fprintln(os.Stderr, "  Examples:")
		fmt.Fprintln(os.Stderr, "    1. Direct JSON: "+ui.Code.Sprint(`{"key": "value"}`))
		fmt.Fprintln(os.Stderr, "    2. JSON file:   "+ui.Code.Sprint("metadata.json"))
		return nil, err
	}
	return meta, nil
}

// promptForMetadata interactively asks whether to attach metadata to name and
// reads it. The second return value reports whether metadata was given.
func promptForMetadata(r *bufio.Reader, name string) (any, bool) {
	if !terminal.Confirm(r, "\nAdd metadata for "+ui.Highlight.Sprint(name)+"?") {
		return nil, false
	}

	fmt.Println()
	fmt.Println(ui.Info.Sprint("→") + " Enter metadata as JSON or a path to a JSON file")
	fmt.Println("  Example: " + ui.Code.Sprint(`{"type": "document", "version": "1.0"}`))
	fmt.Println("  Or press Enter to skip")

	for {
		line, err := terminal.ReadLine(r, "Metadata")
		if err != nil || line == "" {
			return nil, false
		}

		meta, parseErr := metadata.ParseArgument(line)
		if parseErr == nil {
			return meta, true
		}

		fmt.Println(ui.Error.Sprint("✗") + " Invalid JSON")
		if !terminal.Confirm(r, "Try again?") {
			return nil, false
		}
	}
}

// metadataIsEmpty reports whether a decoded metadata value is the empty
// mapping (the "nothing was set" case).
func metadataIsEmpty(meta any) bool {
	switch m := meta.(type) {
	case nil:
		return true
	case map[string]any:
		return len(m) == 0
	default:
		return false
	}
}

// indentJSON renders a metadata value as indented JSON for display.
func indentJSON(meta any) string {
	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		// Display-only path; metadata reaching here already decoded from JSON.
		return fmt.Sprint(meta)
	}
	return string(b)
}

// indentBlock prefixes every line of s for nested display.
func indentBlock(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Yobazuk/zipper/internal/archive"
	"github.com/Yobazuk/zipper/internal/configs"
	"github.com/Yobazuk/zipper/internal/terminal"
	"github.com/Yobazuk/zipper/internal/ui"
)

var (
	createArchiveMetadata string
	createFileMetadata    string
	createNoInteractive   bool
)

func init() {
	createCmd.Flags().StringVar(&createArchiveMetadata, "archive-metadata", "", "JSON metadata for the archive (inline or path to a .json file)")
	createCmd.Flags().StringVar(&createFileMetadata, "file-metadata", "", "default JSON metadata for all files (inline or path to a .json file)")
	createCmd.Flags().BoolVar(&createNoInteractive, "no-interactive", false, "disable interactive metadata prompts")
	rootCmd.AddCommand(createCmd)
}

// resetCreateState resets the create command's global state for testing.
func resetCreateState() {
	createArchiveMetadata = ""
	createFileMetadata = ""
	createNoInteractive = false
}

var createCmd = &cobra.Command{
	Use:   "create <archive> <files...>",
	Short: "Create a new ZIP archive with optional metadata",
	Long: `Creates a new ZIP archive from the given files, attaching optional JSON
metadata to individual files and to the archive itself. Metadata is stored
in the standard ZIP comment fields, so the archive remains readable by any
unzip tool.

Files are stored flat under their base names. Missing source files are
reported and skipped; the remaining files are still archived.

Examples:
  # Create an archive with archive-level metadata
  zipper create archive.zip file1.txt --archive-metadata '{"description": "My files"}'

  # Apply the same metadata to every file, without prompting
  zipper create archive.zip a.txt b.txt --file-metadata meta.json --no-interactive`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]
		files := args[1:]

		Logger.Infof("Starting create command")
		Logger.Debugf("Flags: archive-metadata=%q, file-metadata=%q, no-interactive=%t",
			createArchiveMetadata, createFileMetadata, createNoInteractive)

		if err := validateArchivePath(archivePath); err != nil {
			return err
		}

		settings, err := configs.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		// Reject malformed metadata before an archive handle exists.
		var archiveMeta any
		haveArchiveMeta := false
		if createArchiveMetadata != "" {
			if archiveMeta, err = parseMetadataFlag(createArchiveMetadata); err != nil {
				return err
			}
			haveArchiveMeta = true
		}

		var defaultFileMeta any
		haveDefaultMeta := false
		if createFileMetadata != "" {
			if defaultFileMeta, err = parseMetadataFlag(createFileMetadata); err != nil {
				return err
			}
			haveDefaultMeta = true
		}

		interactive := settings.Interactive && !createNoInteractive && terminal.IsInteractive()
		Logger.Debugf("Interactive mode: %t", interactive)

		// Collect all metadata before any writing happens.
		fileMeta := make(map[string]any)
		fileHasMeta := make(map[string]bool)
		switch {
		case interactive:
			reader := bufio.NewReader(cmd.InOrStdin())
			for _, file := range files {
				base := filepath.Base(file)
				if !haveDefaultMeta {
					if meta, ok := promptForMetadata(reader, base); ok {
						fileMeta[file], fileHasMeta[file] = meta, true
					}
					continue
				}

				fmt.Println("\n" + ui.Info.Sprint("→") + " Default metadata for " + ui.Highlight.Sprint(base) + ":")
				fmt.Println(indentBlock(indentJSON(defaultFileMeta), "  "))
				if terminal.Confirm(reader, "Use different metadata for this file?") {
					if meta, ok := promptForMetadata(reader, base); ok {
						fileMeta[file], fileHasMeta[file] = meta, true
					}
				} else {
					fileMeta[file], fileHasMeta[file] = defaultFileMeta, true
				}
			}

			if !haveArchiveMeta && terminal.Confirm(reader, "\nAdd metadata to the archive?") {
				if meta, ok := promptForMetadata(reader, filepath.Base(archivePath)); ok {
					archiveMeta, haveArchiveMeta = meta, true
				}
			}

		case haveDefaultMeta:
			for _, file := range files {
				fileMeta[file], fileHasMeta[file] = defaultFileMeta, true
			}
		}

		spinner, cleanup := startSpinner("Creating archive "+archivePath+"...", verbose)
		defer cleanup()

		arch, err := archive.Open(archivePath, archive.ModeWrite,
			archive.WithCompressionLevel(settings.CompressionLevel))
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to create archive: " + err.Error()
			return err
		}
		defer arch.Close()

		var added, missing []string
		for _, file := range files {
			var opts []archive.AddOption
			if fileHasMeta[file] {
				opts = append(opts, archive.WithMetadata(fileMeta[file]))
			}

			Logger.Debugf("Adding file: %s", file)
			err := arch.AddFile(file, opts...)
			switch {
			case err == nil:
				if fileHasMeta[file] {
					added = append(added, "Added "+file+" to archive with metadata")
				} else {
					added = append(added, "Added "+file+" to archive")
				}
			case errors.Is(err, fs.ErrNotExist):
				Logger.Infof("Skipping missing file: %s", file)
				missing = append(missing, "File not found: "+file)
			default:
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to add " + file + ": " + err.Error()
				return err
			}
		}

		if haveArchiveMeta {
			if err := arch.SetMetadata(archiveMeta); err != nil {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to set archive metadata: " + err.Error()
				return err
			}
		}

		if err := arch.Close(); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to finalize archive: " + err.Error()
			return err
		}

		// Stop the spinner before the per-file report.
		cleanup()

		for _, line := range added {
			fmt.Println(ui.Success.Sprint("✓") + " " + line)
		}
		for _, line := range missing {
			fmt.Println(ui.Error.Sprint("✗") + " " + line)
		}
		if haveArchiveMeta {
			fmt.Println(ui.Success.Sprint("✓") + " Added metadata to archive")
		}
		fmt.Printf("%s Created %s (%d files)\n", ui.Success.Sprint("✓"), ui.Path.Sprint(archivePath), len(added))
		return nil
	},
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yobazuk/zipper/internal/archive"
	zerrors "github.com/Yobazuk/zipper/internal/errors"
	"github.com/Yobazuk/zipper/internal/ui"
)

var getMetadataFile string

func init() {
	getMetadataCmd.Flags().StringVarP(&getMetadataFile, "file", "f", "", "specific file to read metadata from")
	rootCmd.AddCommand(getMetadataCmd)
}

// resetGetMetadataState resets the get-metadata command's global state for testing.
func resetGetMetadataState() {
	getMetadataFile = ""
}

var getMetadataCmd = &cobra.Command{
	Use:   "get-metadata <archive>",
	Short: "Read metadata from an archive or a specific file",
	Long: `Reads JSON metadata stored in an archive's comment fields.

Without --file, prints the archive-level metadata followed by the metadata
of every file that has any. With --file, prints that file's metadata only.

Examples:
  # All metadata in the archive
  zipper get-metadata archive.zip

  # Metadata for one file
  zipper get-metadata archive.zip --file doc.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]

		Logger.Infof("Starting get-metadata command")
		Logger.Debugf("Flags: file=%q", getMetadataFile)

		if err := validateArchivePath(archivePath); err != nil {
			return err
		}

		arch, err := archive.Open(archivePath, archive.ModeRead)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open archive %s: %v", archivePath, err)
		}
		defer arch.Close()

		if getMetadataFile != "" {
			meta, err := arch.FileMetadata(getMetadataFile)
			if err != nil {
				if errors.Is(err, zerrors.ErrFileNotInArchive) {
					fmt.Println(ui.Error.Sprint("✗") + " File not found in archive: " + ui.Highlight.Sprint(getMetadataFile))
				}
				return err
			}

			if metadataIsEmpty(meta) {
				fmt.Println(ui.Warning.Sprint("⚠") + " No metadata found for " + ui.Highlight.Sprint(getMetadataFile))
				return nil
			}

			fmt.Println(ui.Info.Sprint("Metadata for " + getMetadataFile + ":"))
			fmt.Println(indentJSON(meta))
			return nil
		}

		archiveMeta, err := arch.Metadata()
		if err != nil {
			return err
		}
		if !metadataIsEmpty(archiveMeta) {
			fmt.Println(ui.Success.Sprint("Archive Metadata:"))
			fmt.Println(indentJSON(archiveMeta))
			fmt.Println()
		}

		entries, err := arch.List()
		if err != nil {
			return err
		}

		fmt.Println(ui.Info.Sprint("File Metadata:"))
		shown := 0
		for _, e := range entries {
			if metadataIsEmpty(e.Metadata) {
				continue
			}
			fmt.Println(ui.Highlight.Sprint(e.Name) + ":")
			fmt.Println(indentBlock(indentJSON(e.Metadata), "  "))
			shown++
		}
		if shown == 0 {
			fmt.Println(ui.Warning.Sprint("⚠") + " No file metadata found")
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yobazuk/zipper/internal/archive"
	"github.com/Yobazuk/zipper/internal/ui"
)

func init() {
	rootCmd.AddCommand(listContentsCmd)
}

var listContentsCmd = &cobra.Command{
	Use:   "list-contents <archive>",
	Short: "List archive contents with details",
	Long: `Lists every file in the archive with its sizes and metadata, in the
order the entries were written.

Example:
  zipper list-contents archive.zip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]

		Logger.Infof("Starting list-contents command")

		if err := validateArchivePath(archivePath); err != nil {
			return err
		}

		arch, err := archive.Open(archivePath, archive.ModeRead)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to open archive %s: %v", archivePath, err)
		}
		defer arch.Close()

		fmt.Println(ui.Info.Sprint("Archive:") + " " + ui.Path.Sprint(archivePath))

		archiveMeta, err := arch.Metadata()
		if err != nil {
			return err
		}
		if !metadataIsEmpty(archiveMeta) {
			fmt.Println()
			fmt.Println(ui.Success.Sprint("Archive Metadata:"))
			fmt.Println(indentJSON(archiveMeta))
		}

		entries, err := arch.List()
		if err != nil {
			return err
		}

		fmt.Println()
		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("archive is empty"))
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %d bytes  %d bytes compressed\n",
				ui.Highlight.Sprint(e.Name), e.Size, e.CompressedSize)
			if metadataIsEmpty(e.Metadata) {
				fmt.Println("  " + ui.Muted.Sprint("no metadata"))
			} else {
				fmt.Println(indentBlock(indentJSON(e.Metadata), "  "))
			}
		}
		return nil
	},
}

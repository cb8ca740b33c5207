package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	logger "github.com/Yobazuk/zipper/internal/logging"
	"github.com/Yobazuk/zipper/internal/ui"
)

var (
	verbose bool
	debug   bool
	noColor bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "zipper",
		Short: "Zipper - Create and manage ZIP archives with metadata.",
		Long: `Zipper is a command-line tool for creating ZIP archives that carry
structured JSON metadata, stored in the standard ZIP comment fields so the
archives stay fully compatible with any unzip tool.

Available Commands:
  create         Create a new ZIP archive with optional metadata
  get-metadata   Read metadata from an archive or a specific file
  list-contents  List archive contents with details

Run 'zipper help <command>' for more details on a specific command.
`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing zipper with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println()
			banner := figure.NewColorFigure("Zipper", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run " + ui.Code.Sprint("zipper --help") + " to see available commands.")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

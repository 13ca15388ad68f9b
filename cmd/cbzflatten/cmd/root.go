package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/cbz"
	"github.com/comic-utils/tankobon/pkg/config"
	"github.com/comic-utils/tankobon/pkg/flatten"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cbzflatten",
	Short: "Flatten the directory structure inside comic archives",
	Long: `cbzflatten rewrites every comic archive found under the current
directory so all pages sit at the top level of the archive. Pages nested
in subdirectories are moved up and the emptied directories are dropped.
Each archive is rewritten in place.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.LoadDotenvIfSet(); err != nil {
			log.Fatalf("Failed loading configuration file: %s", err)
		}

		if err := Run("."); err != nil {
			log.Fatalf("cbzflatten: %s", err)
		}
	},
}

// Run flattens every archive found under root, stopping at the first
// failure.
func Run(root string) error {
	archives, err := cbz.FindArchives(root)
	if err != nil {
		return err
	}

	scratchRoot := config.ScratchRoot()

	for _, archivePath := range archives {
		log.Infof("Flattening %s", archivePath)

		result, err := flatten.Archive(archivePath, scratchRoot)
		if err != nil {
			return err
		}

		if result.Moved > 0 {
			log.Infof("Moved %d entries to the top level of %s", result.Moved, archivePath)
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

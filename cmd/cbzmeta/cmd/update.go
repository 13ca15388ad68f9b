package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/config"
	"github.com/comic-utils/tankobon/pkg/metadata"
)

var updateCmd = &cobra.Command{
	Use:   "update <archive>",
	Short: "Refresh an archive's metadata from the catalog",
	Long: `update refreshes the metadata inside a chapter archive. The series,
volume, and chapter are taken from the archive's filename, which must
look like "<series> v<volume> c<chapter>.cbz". Catalog metadata for the
series is overlaid on whatever the archive already carries.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runUpdate(ctx, args[0]); err != nil {
			log.Fatalf("cbzmeta update: %s", err)
		}
	},
}

func runUpdate(ctx context.Context, archivePath string) error {
	if _, err := os.Stat(archivePath); err != nil {
		return fmt.Errorf("no archive to update at '%s'", archivePath)
	}

	err := metadata.UpdateArchive(ctx, newSource(), archivePath, useFirst,
		os.Stdin, os.Stdout, config.ScratchRoot())

	switch {
	case errors.Is(err, metadata.ErrNoResults):
		return fmt.Errorf("unable to fetch metadata for '%s'", archivePath)

	case errors.Is(err, metadata.ErrNoSelection):
		fmt.Println("No matching result selected.")
		return nil
	}

	return err
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

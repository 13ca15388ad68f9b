/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/config"
	"github.com/comic-utils/tankobon/pkg/rename"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cbzrename <new name> <archive> [<archive> ...]",
	Short: "Rename comic archives and their pages",
	Long: `cbzrename renames comic archives and the pages inside them. The old
series/volume name is derived from each archive's filename and every
occurrence of it, in page names and in the archive name itself, is
replaced with the given new name. The renamed archive is written next to
the original.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.LoadDotenvIfSet(); err != nil {
			log.Fatalf("Failed loading configuration file: %s", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := Run(ctx, args[0], args[1:]); err != nil {
			log.Fatalf("cbzrename: %s", err)
		}
	},
}

// Run renames each archive in turn, stopping at the first failure.
func Run(ctx context.Context, newName string, archives []string) error {
	scratchRoot := config.ScratchRoot()

	for _, archivePath := range archives {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		oldName, err := rename.OldName(filepath.Base(archivePath))
		if err != nil {
			return err
		}

		fmt.Println("----------")
		fmt.Println(archivePath)
		fmt.Println(oldName)
		fmt.Println(newName)

		result, err := rename.Archive(archivePath, newName, scratchRoot)
		if err != nil {
			return err
		}

		log.Infof("Renamed %d entries into %s", result.EntriesRenamed, result.NewPath)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Usage and argument errors are reported on stdout.
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stdout)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

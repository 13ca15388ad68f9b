/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/config"
	"github.com/comic-utils/tankobon/pkg/metadata"
	"github.com/comic-utils/tankobon/pkg/metadata/stor"
)

var (
	useCache bool
	useFirst bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cbzmeta",
	Short: "Manage the ComicInfo metadata of comic archives",
	Long: `cbzmeta manages the ComicInfo.xml metadata stored inside comic
archives. It can fetch metadata for a series from the MangaUpdates
catalog, read and edit the metadata in an archive, and refresh an
archive's metadata from the catalog.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.LoadDotenvIfSet(); err != nil {
			log.Fatalf("Failed loading configuration file: %s", err)
		}
	},
}

// newSource builds the catalog client, with page caching when --cache
// was given.
func newSource() metadata.Source {
	if !useCache {
		return metadata.NewMangaUpdates(nil)
	}

	return metadata.NewMangaUpdates(stor.MustConnectToCache(config.CachePath()))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useCache, "cache", false,
		"cache fetched catalog pages in the cache database")
	rootCmd.PersistentFlags().BoolVar(&useFirst, "first", false,
		"when presented with choices, always choose the first option and do not prompt")
}

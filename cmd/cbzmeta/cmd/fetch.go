package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/metadata"
)

var (
	outputPath  string
	printStdout bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <name>",
	Short: "Fetch catalog metadata for a series by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := runFetch(ctx, args[0]); err != nil {
			log.Fatalf("cbzmeta fetch: %s", err)
		}
	},
}

func runFetch(ctx context.Context, name string) error {
	md, _, err := metadata.FetchByName(ctx, newSource(), name, useFirst, os.Stdin, os.Stdout)
	switch {
	case errors.Is(err, metadata.ErrNoResults):
		return fmt.Errorf("no results found matching name '%s'", name)

	case errors.Is(err, metadata.ErrNoSelection):
		fmt.Println("No matching result selected.")
		return nil

	case err != nil:
		return err
	}

	if outputPath != "" {
		fmt.Printf("Writing metadata to '%s'.\n", outputPath)

		text, err := md.ToXML()
		if err != nil {
			return err
		}

		if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
			return err
		}
	}

	if printStdout {
		text, err := md.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(text)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the fetched metadata to this path as XML")
	fetchCmd.Flags().BoolVar(&printStdout, "stdout", false,
		"print the fetched metadata to stdout as JSON")
}

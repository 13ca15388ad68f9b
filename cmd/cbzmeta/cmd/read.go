package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/comicinfo"
)

var readCmd = &cobra.Command{
	Use:   "read <archive>",
	Short: "Print the metadata stored in an archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRead(args[0]); err != nil {
			log.Fatalf("cbzmeta read: %s", err)
		}
	},
}

func runRead(archivePath string) error {
	md, found, err := comicinfo.FromArchive(archivePath)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("no metadata in '%s'", archivePath)
	}

	text, err := md.ToJSON()
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func init() {
	rootCmd.AddCommand(readCmd)
}

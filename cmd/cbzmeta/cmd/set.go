package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/comic-utils/tankobon/pkg/comicinfo"
	"github.com/comic-utils/tankobon/pkg/config"
	"github.com/comic-utils/tankobon/pkg/scratch"
)

var setCmd = &cobra.Command{
	Use:   "set <archive> <Key=Value> [<Key=Value> ...]",
	Short: "Set metadata values in an archive",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSet(args[0], args[1:]); err != nil {
			log.Fatalf("cbzmeta set: %s", err)
		}
	},
}

func runSet(archivePath string, assignments []string) error {
	md, _, err := comicinfo.FromArchive(archivePath)
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		key, value, found := strings.Cut(assignment, "=")
		if !found || key == "" {
			return fmt.Errorf("malformed assignment '%s', expected Key=Value", assignment)
		}

		md.Set(key, value)
	}

	sd, err := scratch.New(config.ScratchRoot(), filepath.Base(archivePath))
	if err != nil {
		return err
	}
	defer sd.Remove()

	return md.WriteToArchive(archivePath, sd.Path)
}

func init() {
	rootCmd.AddCommand(setCmd)
}

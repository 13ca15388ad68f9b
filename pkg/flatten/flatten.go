// Package flatten removes directory nesting from comic archives, moving
// every page to the top level of the archive.
package flatten

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/comic-utils/tankobon/pkg/cbz"
	"github.com/comic-utils/tankobon/pkg/fsutil"
	"github.com/comic-utils/tankobon/pkg/scratch"
)

// Result describes what flattening a single archive did.
type Result struct {
	Path       string
	Moved      int
	Collisions int
}

// Archive flattens one archive in place: entries are extracted, every
// nested file is moved to the top level, emptied directories are removed,
// and the archive is repacked under its original filename.
//
// When two entries flatten to the same name the later one (in walk order)
// wins and the earlier is discarded, matching the historical behavior of
// a plain move. Each collision is logged.
func Archive(archivePath, scratchRoot string) (*Result, error) {
	base := filepath.Base(archivePath)

	sd, err := scratch.New(scratchRoot, base)
	if err != nil {
		return nil, err
	}
	defer sd.Remove()

	contentsDir := sd.Join("contents")
	if err := os.Mkdir(contentsDir, 0755); err != nil {
		return nil, err
	}

	if err := cbz.Extract(archivePath, contentsDir); err != nil {
		return nil, err
	}

	result := &Result{Path: archivePath}
	if err := moveFilesToTop(contentsDir, result); err != nil {
		return nil, err
	}

	if err := removeEmptiedDirs(contentsDir); err != nil {
		return nil, err
	}

	packed := sd.Join(base)
	if err := cbz.Create(packed, contentsDir); err != nil {
		return nil, err
	}

	if err := fsutil.MoveFile(packed, archivePath); err != nil {
		return nil, err
	}

	return result, nil
}

func moveFilesToTop(root string, result *Result) error {
	var nested []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Dir(path) != root {
			nested = append(nested, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, path := range nested {
		dest := filepath.Join(root, filepath.Base(path))
		if _, err := os.Stat(dest); err == nil {
			log.Warnf("flatten: name collision on %s, keeping the later file", filepath.Base(path))
			result.Collisions++
		}

		if err := os.Rename(path, dest); err != nil {
			return errors.Wrapf(err, "unable to move %s to top level", path)
		}
		result.Moved++
	}

	return nil
}

// removeEmptiedDirs removes every directory under root, deepest first. All
// files have been moved out by the time this runs, so the removes only
// fail if something unexpected is still in the tree.
func removeEmptiedDirs(root string) error {
	var dirs []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(os.PathSeparator)) > strings.Count(dirs[j], string(os.PathSeparator))
	})

	for _, dir := range dirs {
		if err := os.Remove(dir); err != nil {
			return errors.Wrapf(err, "unable to remove directory %s", dir)
		}
	}

	return nil
}

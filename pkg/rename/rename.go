// Package rename renames comic archives and their entries by substituting
// the volume-name token derived from the archive's filename.
package rename

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/comic-utils/tankobon/pkg/cbz"
	"github.com/comic-utils/tankobon/pkg/fsutil"
	"github.com/comic-utils/tankobon/pkg/scratch"
)

// Result describes what a single-archive rename did.
type Result struct {
	OldName        string
	NewName        string
	OldPath        string
	NewPath        string
	EntriesRenamed int
}

// Archive renames one archive: every entry containing the old-name token
// has the token replaced with newName, and the archive itself is repacked
// under the substituted filename next to the original. An existing file at
// the new path is overwritten. The original archive is left in place when
// the new filename differs.
func Archive(archivePath, newName, scratchRoot string) (*Result, error) {
	base := filepath.Base(archivePath)

	oldName, err := OldName(base)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to rename %s", archivePath)
	}

	sd, err := scratch.New(scratchRoot, base)
	if err != nil {
		return nil, err
	}
	defer sd.Remove()

	extractDir := sd.Join("contents")
	if err := os.Mkdir(extractDir, 0755); err != nil {
		return nil, err
	}

	if err := cbz.Extract(archivePath, extractDir); err != nil {
		return nil, err
	}

	renamed, err := substituteNames(extractDir, oldName, newName)
	if err != nil {
		return nil, err
	}

	newBase := strings.ReplaceAll(base, oldName, newName)
	packed := sd.Join(newBase)
	if err := cbz.Create(packed, extractDir); err != nil {
		return nil, err
	}

	newPath := filepath.Join(filepath.Dir(archivePath), newBase)
	if err := fsutil.MoveFile(packed, newPath); err != nil {
		return nil, err
	}

	return &Result{
		OldName:        oldName,
		NewName:        newName,
		OldPath:        archivePath,
		NewPath:        newPath,
		EntriesRenamed: renamed,
	}, nil
}

// substituteNames renames every file and directory under dir whose base
// name contains oldName. Paths are processed deepest first so directory
// renames don't invalidate the paths of their children.
func substituteNames(dir, oldName, newName string) (int, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path != dir {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	sort.Slice(paths, func(i, j int) bool {
		return strings.Count(paths[i], string(os.PathSeparator)) > strings.Count(paths[j], string(os.PathSeparator))
	})

	renamed := 0
	for _, path := range paths {
		base := filepath.Base(path)
		if !strings.Contains(base, oldName) {
			continue
		}

		newPath := filepath.Join(filepath.Dir(path), strings.ReplaceAll(base, oldName, newName))
		if err := os.Rename(path, newPath); err != nil {
			return renamed, errors.Wrapf(err, "unable to rename entry %s", base)
		}
		renamed++
	}

	return renamed, nil
}

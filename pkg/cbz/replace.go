package cbz

import (
	"archive/zip"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/comic-utils/tankobon/pkg/fsutil"
)

// ReplaceEntry rewrites the archive at archivePath without any entry whose
// base name is entryName, appends a new top-level entry with that name and
// data, and moves the result over the original. Matching on the base name
// also strips stale copies nested in subdirectories. The rewrite is staged
// in stagingDir so a failure never leaves a half-written archive behind.
func ReplaceEntry(archivePath, entryName string, data []byte, stagingDir string) error {
	tempPath := filepath.Join(stagingDir, "rewrite.zip")

	if err := rewriteWithout(archivePath, tempPath, entryName, data); err != nil {
		return err
	}

	return fsutil.MoveFile(tempPath, archivePath)
}

func rewriteWithout(archivePath, tempPath, entryName string, data []byte) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return errors.Wrapf(err, "unable to open archive %s", archivePath)
	}
	defer r.Close()

	out, err := os.Create(tempPath)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", tempPath)
	}

	w := zip.NewWriter(out)

	for _, f := range r.File {
		if path.Base(f.Name) == entryName {
			continue
		}

		if err := w.Copy(f); err != nil {
			_ = w.Close()
			_ = out.Close()
			return errors.Wrapf(err, "unable to copy entry %s", f.Name)
		}
	}

	entry, err := w.Create(entryName)
	if err != nil {
		_ = w.Close()
		_ = out.Close()
		return err
	}

	if _, err := entry.Write(data); err != nil {
		_ = w.Close()
		_ = out.Close()
		return err
	}

	if err := w.Close(); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

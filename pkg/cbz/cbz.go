// Package cbz reads and writes comic-book archives. A cbz file is a plain
// zip archive; entries are addressed by their slash-separated relative
// paths.
package cbz

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Ext is the conventional extension for comic-book zip archives.
const Ext = ".cbz"

// IsArchive reports whether path names a cbz archive.
func IsArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// Extract expands every entry of the archive at archivePath into destDir,
// preserving relative paths. Entry names that would escape destDir are
// rejected.
func Extract(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return errors.Wrapf(err, "unable to open archive %s", archivePath)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return errors.Wrapf(err, "unable to extract %s from %s", f.Name, archivePath)
		}
	}

	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	path := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(path, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return errors.Errorf("entry path escapes extraction dir: %s", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(path, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// Create packs every file found under dir into a new zip archive at
// archivePath. Entry names are the slash-separated paths relative to dir,
// written in sorted order so repacking is deterministic.
func Create(archivePath, dir string) error {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "unable to walk %s", dir)
	}
	sort.Strings(files)

	out, err := os.Create(archivePath)
	if err != nil {
		return errors.Wrapf(err, "unable to create archive %s", archivePath)
	}

	w := zip.NewWriter(out)
	for _, path := range files {
		if err := addEntry(w, dir, path); err != nil {
			_ = w.Close()
			_ = out.Close()
			return errors.Wrapf(err, "unable to add %s to %s", path, archivePath)
		}
	}

	if err := w.Close(); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

func addEntry(w *zip.Writer, dir, path string) error {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return err
	}

	entry, err := w.Create(filepath.ToSlash(rel))
	if err != nil {
		return err
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	_, err = io.Copy(entry, in)
	return err
}

// List returns the names of the file entries in the archive, sorted.
// Directory entries are skipped.
func List(archivePath string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open archive %s", archivePath)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
	}

	sort.Strings(names)
	return names, nil
}

// ReadEntry returns the contents of the named entry. The second return is
// false when the archive has no such entry.
func ReadEntry(archivePath, name string) ([]byte, bool, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, false, errors.Wrapf(err, "unable to open archive %s", archivePath)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}

		in, err := f.Open()
		if err != nil {
			return nil, false, err
		}
		defer in.Close()

		data, err := io.ReadAll(in)
		return data, err == nil, err
	}

	return nil, false, nil
}

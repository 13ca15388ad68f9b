package rename

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comic-utils/tankobon/pkg/cbz"
)

func TestOldName(t *testing.T) {
	var tests = []struct {
		filename string
		expected string
		wantErr  bool
	}{
		{filename: "Foo v01 (2020).cbz", expected: "Foo v01"},
		{filename: "Foo v01 001.jpg", expected: "Foo v01"},
		{filename: "Berserk v03 c022.cbz", expected: "Berserk v03"},
		{filename: "Some Long Series v012.cbz", expected: "Some Long Series v012"},
		{filename: "Foo v0.cbz", expected: "Foo v0"},
		{filename: "Notes.cbz", wantErr: true},
		{filename: "v01.cbz", wantErr: true},
		{filename: "Foo v12.cbz", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			oldName, err := OldName(test.filename)
			if test.wantErr {
				require.ErrorIs(t, err, ErrNoVolumeToken)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, oldName)
		})
	}
}

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()

	w := zip.NewWriter(out)
	for name, contents := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestArchiveSubstitutesEntriesAndFilename(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "Foo v01 (2020).cbz")

	writeArchive(t, archivePath, map[string]string{
		"Foo v01 001.jpg": "one",
		"Foo v01 002.jpg": "two",
		"cover.jpg":       "cover",
	})

	result, err := Archive(archivePath, "Bar v01", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "Foo v01", result.OldName)
	require.Equal(t, filepath.Join(dir, "Bar v01 (2020).cbz"), result.NewPath)
	require.Equal(t, 2, result.EntriesRenamed)

	names, err := cbz.List(result.NewPath)
	require.NoError(t, err)
	require.Equal(t, []string{"Bar v01 001.jpg", "Bar v01 002.jpg", "cover.jpg"}, names)

	// The new filename differs, so the original archive is left in place.
	_, err = os.Stat(archivePath)
	require.NoError(t, err)
}

func TestArchiveNoOpWhenTokenAbsentFromEntries(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "Foo v01.cbz")

	writeArchive(t, archivePath, map[string]string{
		"001.jpg": "one",
		"002.jpg": "two",
	})

	result, err := Archive(archivePath, "Bar v01", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 0, result.EntriesRenamed)

	names, err := cbz.List(result.NewPath)
	require.NoError(t, err)
	require.Equal(t, []string{"001.jpg", "002.jpg"}, names)
}

func TestArchiveRenamesNestedEntries(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "Foo v02.cbz")

	writeArchive(t, archivePath, map[string]string{
		"Foo v02/Foo v02 001.jpg": "one",
	})

	result, err := Archive(archivePath, "Bar v02", t.TempDir())
	require.NoError(t, err)

	names, err := cbz.List(result.NewPath)
	require.NoError(t, err)
	require.Equal(t, []string{"Bar v02/Bar v02 001.jpg"}, names)
}

func TestArchiveOverwritesConflictingTarget(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "Foo v01.cbz")
	conflictPath := filepath.Join(dir, "Bar v01.cbz")

	writeArchive(t, archivePath, map[string]string{"Foo v01 001.jpg": "one"})
	require.NoError(t, os.WriteFile(conflictPath, []byte("stale"), 0644))

	result, err := Archive(archivePath, "Bar v01", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, conflictPath, result.NewPath)

	names, err := cbz.List(conflictPath)
	require.NoError(t, err)
	require.Equal(t, []string{"Bar v01 001.jpg"}, names)
}

func TestArchiveRejectsNameWithoutVolumeToken(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "Notes.cbz")

	writeArchive(t, archivePath, map[string]string{"page.jpg": "x"})

	_, err := Archive(archivePath, "Bar v01", t.TempDir())
	require.ErrorIs(t, err, ErrNoVolumeToken)

	// Nothing was touched.
	names, err := cbz.List(archivePath)
	require.NoError(t, err)
	require.Equal(t, []string{"page.jpg"}, names)
}

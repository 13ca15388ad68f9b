package comicinfo

import (
	"github.com/comic-utils/tankobon/pkg/cbz"
)

// FromArchive reads the metadata entry of the archive at path. The second
// return is false when the archive carries no metadata; the returned
// Metadata is then a fresh document.
func FromArchive(path string) (*Metadata, bool, error) {
	data, found, err := cbz.ReadEntry(path, EntryName)
	if err != nil {
		return nil, false, err
	}

	if !found {
		return New(), false, nil
	}

	m, err := ParseXML(data)
	if err != nil {
		return nil, false, err
	}

	return m, true, nil
}

// WriteToArchive replaces the metadata entry of the archive at path,
// staging the rewrite in stagingDir.
func (m *Metadata) WriteToArchive(path, stagingDir string) error {
	text, err := m.ToXML()
	if err != nil {
		return err
	}

	return cbz.ReplaceEntry(path, EntryName, []byte(text), stagingDir)
}

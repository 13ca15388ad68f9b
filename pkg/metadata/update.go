package metadata

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/comic-utils/tankobon/pkg/comicinfo"
	"github.com/comic-utils/tankobon/pkg/scratch"
)

// Chapter archives are named "<series> v<volume> c<chapter>.cbz",
// e.g. "Berserk v03 c022.cbz" or "Berserk v03 c022a.cbz".
var archiveNameRe = regexp.MustCompile(`^(.+)\s+v(\d+)\s+c(\d+[a-z]?)\.cbz$`)

// ArchiveName is the series/volume/chapter information carried by a
// chapter archive's filename.
type ArchiveName struct {
	Series  string
	Volume  string
	Chapter string
}

// ParseArchiveName extracts series, volume, and chapter from an archive
// filename. Volume loses its leading zeros.
func ParseArchiveName(filename string) (*ArchiveName, error) {
	match := archiveNameRe.FindStringSubmatch(strings.TrimSpace(filename))
	if match == nil {
		return nil, errors.Errorf("cannot parse name/volume/chapter from archive name: %s", filename)
	}

	volume, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, err
	}

	return &ArchiveName{
		Series:  strings.TrimSpace(match[1]),
		Volume:  strconv.Itoa(volume),
		Chapter: match[3],
	}, nil
}

// UpdateArchive refreshes the metadata inside the archive at archivePath:
// it fetches catalog metadata for the series named in the filename,
// overlays it on whatever metadata the archive already carries, stamps
// the filename's volume and chapter, and rewrites the metadata entry.
func UpdateArchive(ctx context.Context, src Source, archivePath string, useFirst bool, in io.Reader, out io.Writer, scratchRoot string) error {
	base := filepath.Base(archivePath)

	parsed, err := ParseArchiveName(base)
	if err != nil {
		return err
	}

	fetched, _, err := FetchByName(ctx, src, parsed.Series, useFirst, in, out)
	if err != nil {
		return err
	}

	md, _, err := comicinfo.FromArchive(archivePath)
	if err != nil {
		return err
	}

	md.Update(fetched)
	md.Set("Volume", parsed.Volume)
	md.Set("Number", parsed.Chapter)

	sd, err := scratch.New(scratchRoot, base)
	if err != nil {
		return err
	}
	defer sd.Remove()

	return md.WriteToArchive(archivePath, sd.Path)
}

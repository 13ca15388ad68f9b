package rename

import (
	"errors"
	"regexp"
)

// ErrNoVolumeToken is returned for archive names that don't carry a
// volume marker, e.g. "Notes.cbz". The original name can't be derived
// from such a file, so it can't be renamed.
var ErrNoVolumeToken = errors.New("archive name has no volume token")

// An archive name looks like "<series> v0<digits><rest>", for example
// "Berserk v03 (1990).cbz". The old-name token runs through the end of
// the volume field so that substituting a "<series> v0<digits>" target
// replaces the series and volume in one pass.
var volumeTokenRe = regexp.MustCompile(`^(.+?\s+v0\d*)`)

// OldName derives the old-name token from an archive's base filename.
func OldName(filename string) (string, error) {
	match := volumeTokenRe.FindStringSubmatch(filename)
	if match == nil {
		return "", ErrNoVolumeToken
	}

	return match[1], nil
}

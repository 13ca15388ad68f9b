// Package scratch manages transient staging directories used to unpack
// and repack archives. Each Dir is exclusively owned by its creator and
// exists only for the duration of one archive's processing.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
)

// Dir is a staging directory for a single unit of work.
type Dir struct {
	Path string
}

// New creates a uniquely named scratch directory under root. The name is
// only used to make the directory recognizable when poking around in root;
// uniqueness comes from the uuid suffix.
func New(root, name string) (*Dir, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create scratch root %s", root)
	}

	dirName := fmt.Sprintf("tankobon-%s-%s", slug.Make(name), id[:8])
	path := filepath.Join(root, dirName)

	if err := os.Mkdir(path, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create scratch dir %s", path)
	}

	return &Dir{Path: path}, nil
}

// Join returns a path inside the scratch directory.
func (d *Dir) Join(elem ...string) string {
	return filepath.Join(append([]string{d.Path}, elem...)...)
}

// Remove deletes the scratch directory and everything in it. It is safe to
// call more than once.
func (d *Dir) Remove() error {
	return os.RemoveAll(d.Path)
}

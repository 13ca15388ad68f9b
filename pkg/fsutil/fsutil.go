// Package fsutil holds the couple of file-system helpers the archive tools
// share.
package fsutil

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// MoveFile moves src to dst, replacing dst if it exists. It falls back to
// copy-and-delete when a rename fails, which happens when the scratch
// directory and the destination are on different file systems.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, "unable to copy %s to %s", src, dst)
	}

	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}

//go:build unix

package fs

import (
	"os"

	"golang.org/x/sys/unix"
)

func createSymlink(oldname, newname string) error {
	if err := unix.Symlink(oldname, newname); err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	return nil
}

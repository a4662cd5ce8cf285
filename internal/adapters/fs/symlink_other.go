//go:build !unix && !windows

package fs

import "os"

func createSymlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

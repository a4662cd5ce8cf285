// Package fs implements ports.FileSystem on the host filesystem.
package fs

import (
	iofs "io/fs"
	"os"

	"go.trai.ch/ecfg/internal/core/ports"
)

// OS is a ports.FileSystem backed by the operating system.
type OS struct{}

var _ ports.FileSystem = OS{}

// New returns the host filesystem.
func New() OS {
	return OS{}
}

// Symlink creates newname as a symbolic link to oldname.
// Errors are *os.LinkError values, so errors.Is matches fs.ErrExist and fs.ErrNotExist.
func (OS) Symlink(oldname, newname string) error {
	return createSymlink(oldname, newname)
}

// Readlink returns the target of the symbolic link name.
func (OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// Lstat describes name without following a trailing symlink.
func (OS) Lstat(name string) (iofs.FileInfo, error) {
	return os.Lstat(name)
}

// Remove removes a file, symlink or empty directory.
func (OS) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll removes path and everything under it.
func (OS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// MkdirAll creates path and any missing parents.
func (OS) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(path, perm)
}

package fs

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func createSymlink(oldname, newname string) error {
	link, err := windows.UTF16PtrFromString(newname)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	target, err := windows.UTF16PtrFromString(filepath.FromSlash(oldname))
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}

	// Unprivileged creation needs developer mode.
	flags := uint32(windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE)
	if info, statErr := os.Stat(oldname); statErr == nil && info.IsDir() {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}

	if err := windows.CreateSymbolicLink(link, target, flags); err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	return nil
}

package ports

import "io/fs"

// FileSystem is the filesystem surface the executor provisions symlinks against.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Symlink creates newname as a symbolic link to oldname.
	// Failures must satisfy errors.Is(err, fs.ErrExist) when newname exists
	// and errors.Is(err, fs.ErrNotExist) when its parent is missing.
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Lstat(name string) (fs.FileInfo, error)
	Remove(name string) error
	RemoveAll(path string) error
	MkdirAll(path string, perm fs.FileMode) error
}

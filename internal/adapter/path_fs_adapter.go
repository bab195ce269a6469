// Package adapter contains infrastructure adapters for the here CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "here.dev/pkg/here/internal/model"
)

// PathFSAdapter abstracts the filesystem lookups the resolve and transform
// stages rely on. It intentionally hides direct `os` access so the domain
// logic can be tested without touching the disk.
type PathFSAdapter interface {
	// Getwd returns the working directory of the process.
	Getwd() (m.Path, error)

	// Join joins path elements with the platform separator and cleans the
	// result.
	Join(elem ...string) m.Path

	// Dir returns the parent directory component of path.
	Dir(path m.Path) m.Path

	// IsDir reports whether path exists and denotes a directory.
	IsDir(path m.Path) bool

	// IsSymlink reports whether path is a symbolic link.
	IsSymlink(path m.Path) bool

	// Readlink returns the target the symlink at path points to. Relative
	// targets are resolved against the symlink's own directory.
	Readlink(path m.Path) (m.Path, error)
}

// LocalPathFSAdapter backs PathFSAdapter with the real filesystem.
type LocalPathFSAdapter struct{}

// NewLocalPathFSAdapter constructs a LocalPathFSAdapter ready to be wired
// into the workflow.
func NewLocalPathFSAdapter() *LocalPathFSAdapter {
	return &LocalPathFSAdapter{}
}

// Getwd returns the working directory of the process.
func (a *LocalPathFSAdapter) Getwd() (m.Path, error) {
	wd, err := os.Getwd()

	return m.Path(wd), err
}

// Join joins path elements and cleans the result.
func (a *LocalPathFSAdapter) Join(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// Dir returns the parent directory component of path.
func (a *LocalPathFSAdapter) Dir(path m.Path) m.Path {
	return m.Path(filepath.Dir(string(path)))
}

// IsDir reports whether path exists and denotes a directory.
func (a *LocalPathFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && info.IsDir()
}

// IsSymlink reports whether path is a symbolic link.
func (a *LocalPathFSAdapter) IsSymlink(path m.Path) bool {
	info, err := os.Lstat(string(path))

	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Readlink returns the target the symlink at path points to.
func (a *LocalPathFSAdapter) Readlink(path m.Path) (m.Path, error) {
	target, err := os.Readlink(string(path))
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(string(path)), target)
	}

	return m.Path(target), nil
}

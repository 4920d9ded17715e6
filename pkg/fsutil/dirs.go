// Package fsutil creates and inspects directories for the client.
//
// All operations go through an afero.Fs so callers and tests can swap the host
// filesystem for an in-memory one. Failures are *errcode.Error values carrying the
// errno reported by the filesystem.
package fsutil

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/afero"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// DefaultDirMode is the permission used for directories created by the client (drwxr-xr-x).
const DefaultDirMode fs.FileMode = 0o755

// DirMaker creates directories on a filesystem with a fixed permission.
type DirMaker struct {
	fs   afero.Fs
	mode fs.FileMode
}

// Option configures a DirMaker.
type Option func(*DirMaker)

// WithMode sets the permission bits for created directories.
func WithMode(mode fs.FileMode) Option {
	return func(d *DirMaker) {
		d.mode = mode.Perm()
	}
}

// NewDirMaker returns a DirMaker on fsys. A nil fsys selects the host filesystem.
func NewDirMaker(fsys afero.Fs, opts ...Option) *DirMaker {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	d := &DirMaker{fs: fsys, mode: DefaultDirMode}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mode returns the permission used for created directories.
func (d *DirMaker) Mode() fs.FileMode {
	return d.mode
}

// MakeDir creates a single directory. It succeeds without changes when the path
// already exists, whatever its type. The parent must exist.
func (d *DirMaker) MakeDir(dir string) error {
	if dir == "" {
		return errcode.InvalidParameter("mkdir", "empty path")
	}

	_, err := d.fs.Stat(dir)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return errcode.Wrap(err, "stat", dir)
	}

	slog.Debug("Creating directory", "path", dir, "mode", d.mode)
	if err := d.fs.Mkdir(dir, d.mode); err != nil {
		return errcode.Wrap(err, "mkdir", dir)
	}
	return nil
}

// MakeDirs creates dir and every missing parent, root first.
//
// Unlike MakeDir, an already existing dir is an error matching
// errcode.ErrAlreadyExists. Intermediate directories that already exist are
// left alone, so a partially created tree can be completed by a second call.
func (d *DirMaker) MakeDirs(dir string) error {
	if dir == "" {
		return errcode.InvalidParameter("mkdir", "empty path")
	}

	_, err := d.fs.Stat(dir)
	if err == nil {
		return errcode.SystemError(syscall.EEXIST, "mkdir", dir)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return errcode.Wrap(err, "stat", dir)
	}

	// Only one trailing separator is dropped; "a//" still walks "a" then "a/".
	path := dir
	if len(path) > 1 && os.IsPathSeparator(path[len(path)-1]) {
		path = path[:len(path)-1]
	}

	for i := 1; i < len(path); i++ {
		if !os.IsPathSeparator(path[i]) {
			continue
		}
		if err := d.MakeDir(path[:i]); err != nil {
			return err
		}
	}
	return d.MakeDir(path)
}

// EnsureDir is MakeDirs that also accepts an existing directory.
// An existing non-directory fails with ENOTDIR.
func (d *DirMaker) EnsureDir(dir string) error {
	err := d.MakeDirs(dir)
	if !errors.Is(err, errcode.ErrAlreadyExists) {
		return err
	}

	isDir, err := d.IsDir(dir)
	if err != nil {
		return err
	}
	if !isDir {
		return errcode.SystemError(syscall.ENOTDIR, "mkdir", dir)
	}
	return nil
}

// IsDir reports whether path names a directory. A path that cannot be stat-ed,
// including one that does not exist, is an error; the result is then false.
func (d *DirMaker) IsDir(path string) (bool, error) {
	if path == "" {
		return false, errcode.InvalidParameter("stat", "empty path")
	}

	info, err := d.fs.Stat(path)
	if err != nil {
		return false, errcode.Wrap(err, "stat", path)
	}
	return info.IsDir(), nil
}

var hostDirs = NewDirMaker(afero.NewOsFs())

// MakeDir creates a single directory on the host filesystem. See DirMaker.MakeDir.
func MakeDir(dir string) error {
	return hostDirs.MakeDir(dir)
}

// MakeDirs creates a directory tree on the host filesystem. See DirMaker.MakeDirs.
func MakeDirs(dir string) error {
	return hostDirs.MakeDirs(dir)
}

// EnsureDir makes sure a directory exists on the host filesystem. See DirMaker.EnsureDir.
func EnsureDir(dir string) error {
	return hostDirs.EnsureDir(dir)
}

// IsDir reports whether path is a directory on the host filesystem.
func IsDir(path string) (bool, error) {
	return hostDirs.IsDir(path)
}

package fsutil

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
	"github.com/tdnf-go/tdnf-util/pkg/glob"
)

// UsageEntry is a regular file counted by Usage.
type UsageEntry struct {
	Path string // Relative to the walk root, slash-separated
	Size int64
}

// UsageReport lists the regular files below a root in walk order.
type UsageReport struct {
	Root  string
	Files []UsageEntry
	Total int64
}

// Usage walks root and sums the sizes of the regular files below it.
// Paths matching an exclude pattern (see glob.Matcher) are skipped, and excluded
// directories are not descended into. A nil fsys selects the host filesystem.
// The walk stops with ctx.Err() once ctx is done.
func Usage(ctx context.Context, fsys afero.Fs, root string, exclude []string) (*UsageReport, error) {
	if root == "" {
		return nil, errcode.InvalidParameter("usage", "empty path")
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	matcher, err := glob.NewMatcher(exclude)
	if err != nil {
		return nil, err
	}

	isDir, err := NewDirMaker(fsys).IsDir(root)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, errcode.SystemError(syscall.ENOTDIR, "usage", root)
	}

	report := &UsageReport{Root: root}
	err = afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if matcher.Match(relPath) {
			slog.Debug("Excluding path from usage", "path", relPath)
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		report.Files = append(report.Files, UsageEntry{Path: relPath, Size: info.Size()})
		report.Total += info.Size()
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, errcode.Wrap(err, pathErr.Op, pathErr.Path)
		}
		return nil, errcode.Wrap(err, "usage", root)
	}

	return report, nil
}

// Package glob detects and evaluates shell-glob patterns in package names and paths.
package glob

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// IsGlob reports whether s contains a glob metacharacter: '*', '?' or '['.
func IsGlob(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[':
			return true
		}
	}
	return false
}

// MatchNames returns the names matched by pattern, in input order.
// A pattern without metacharacters only matches names equal to it.
func MatchNames(pattern string, names []string) ([]string, error) {
	if pattern == "" {
		return nil, errcode.InvalidParameter("match", "empty pattern")
	}

	if !IsGlob(pattern) {
		for _, name := range names {
			if name == pattern {
				return []string{name}, nil
			}
		}
		return nil, nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, errcode.InvalidParameter("match", "bad pattern "+pattern)
	}

	var matched []string
	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, errcode.InvalidParameter("match", err.Error())
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// Expand returns the paths in fsys matched by pattern. A pattern without
// metacharacters is returned as-is, like a shell would, whether or not it exists.
func Expand(fsys fs.FS, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, errcode.InvalidParameter("glob", "empty pattern")
	}
	if !IsGlob(pattern) {
		return []string{pattern}, nil
	}

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, wrapGlobError(err, pattern)
	}
	slog.Debug("Expanded glob", "pattern", pattern, "matches", len(matches))
	return matches, nil
}

// ExpandPath is Expand on the host filesystem. The pattern may be absolute.
func ExpandPath(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, errcode.InvalidParameter("glob", "empty pattern")
	}
	if !IsGlob(pattern) {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, wrapGlobError(err, pattern)
	}
	slog.Debug("Expanded glob", "pattern", pattern, "matches", len(matches))
	return matches, nil
}

func wrapGlobError(err error, pattern string) error {
	if errors.Is(err, doublestar.ErrBadPattern) {
		return errcode.InvalidParameter("glob", "bad pattern "+pattern)
	}
	return errcode.Wrap(err, "glob", pattern)
}

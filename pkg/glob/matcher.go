package glob

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tdnf-go/tdnf-util/pkg/errcode"
)

// Matcher tests slash-separated relative paths against exclusion patterns.
//
// Pattern matching behavior:
//   - Patterns ending with "/" match a directory from the root and everything below it
//     (e.g., "cache/" matches "cache/x.rpm" but not "photon/cache/x.rpm")
//   - Patterns without "/" match any single path element (e.g., "*.rpm", "repodata")
//   - Other patterns match the whole path, "**" spanning directories, or any parent of it
type Matcher struct {
	patterns []string
}

// NewMatcher validates patterns and returns a Matcher for them.
func NewMatcher(patterns []string) (*Matcher, error) {
	for _, p := range patterns {
		if p == "" || p == "/" {
			return nil, errcode.InvalidParameter("match", "empty pattern")
		}
		if !doublestar.ValidatePattern(strings.TrimSuffix(p, "/")) {
			return nil, errcode.InvalidParameter("match", "bad pattern "+p)
		}
	}
	return &Matcher{patterns: patterns}, nil
}

// Match reports whether p, a slash-separated path relative to the walk root, is excluded.
func (m *Matcher) Match(p string) bool {
	p = strings.TrimSuffix(p, "/")
	for _, pattern := range m.patterns {
		if matchPattern(pattern, p) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, p string) bool {
	if dir, ok := strings.CutSuffix(pattern, "/"); ok {
		return matchSelfOrParent(dir, p)
	}

	if !strings.Contains(pattern, "/") {
		for _, elem := range strings.Split(p, "/") {
			// Patterns were validated by NewMatcher
			if ok, _ := doublestar.Match(pattern, elem); ok {
				return true
			}
		}
		return false
	}

	return matchSelfOrParent(pattern, p)
}

// matchSelfOrParent reports whether pattern matches p or one of its parent directories.
func matchSelfOrParent(pattern, p string) bool {
	for cur := p; cur != "." && cur != "/" && cur != ""; cur = path.Dir(cur) {
		if ok, _ := doublestar.Match(pattern, cur); ok {
			return true
		}
	}
	return false
}

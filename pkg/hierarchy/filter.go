package hierarchy

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/fsutil/pkg/pathutil"
	"github.com/joe/fsutil/pkg/walk"
)

// GlobFilter matches entries against a doublestar pattern applied to their
// path relative to a listing root. Matching is case-insensitive and uses
// forward slashes; both '/' and '\' in entry paths count as separators.
type GlobFilter struct {
	root              string
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a filter for entries below root.
// Empty pattern matches everything; an invalid pattern matches nothing.
func NewGlobFilter(root, pattern string) *GlobFilter {
	return &GlobFilter{
		root:              pathutil.SanitizePath(root, false),
		normalizedPattern: strings.ToLower(pattern),
		isEmpty:           pattern == "",
	}
}

// Predicate returns the filter as a Predicate for List.
func (f *GlobFilter) Predicate() Predicate {
	return f.ShouldInclude
}

// ShouldInclude reports whether entry matches the pattern.
func (f *GlobFilter) ShouldInclude(entry walk.Entry) bool {
	if f.isEmpty {
		return true
	}

	return f.MatchRelative(strings.TrimPrefix(entry.FullPath(), f.root))
}

// MatchRelative matches a root-relative path directly.
func (f *GlobFilter) MatchRelative(relativePath string) bool {
	if f.isEmpty {
		return true
	}

	normalizedPath := strings.ToLower(strings.ReplaceAll(relativePath, `\`, "/"))

	matched, err := doublestar.Match(f.normalizedPattern, normalizedPath)
	if err != nil {
		return false
	}

	return matched
}

// Valid reports whether the pattern is well formed.
func (f *GlobFilter) Valid() bool {
	return f.isEmpty || doublestar.ValidatePattern(f.normalizedPattern)
}

// GlobPredicate is shorthand for NewGlobFilter(root, pattern).Predicate().
func GlobPredicate(root, pattern string) Predicate {
	return NewGlobFilter(root, pattern).Predicate()
}

// Package pathutil provides pure path-string helpers: separator normalization,
// file name and extension extraction, and relative/absolute path conversion.
// Nothing in this package touches the filesystem.
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"

	fserrors "github.com/joe/fsutil/pkg/errors"
)

// Separator is the host's native path separator.
const Separator = filepath.Separator

// parentComponent is the path component that climbs one level.
const parentComponent = ".."

// ConvertToAbsolutePath resolves rel against base component by component.
// ".." pops the last base component, "." and empty components are ignored.
// Returns ErrInvalidPath when rel climbs above the root of base.
func ConvertToAbsolutePath(base, rel string) (string, error) {
	rooted := isRooted(base)
	components := splitComponents(base)

	for _, component := range splitComponents(rel) {
		switch component {
		case ".":
			continue
		case parentComponent:
			if len(components) == 0 {
				return "", fmt.Errorf("%w: %q climbs above %q", fserrors.ErrInvalidPath, rel, base)
			}
			components = components[:len(components)-1]
		default:
			components = append(components, component)
		}
	}

	return join(components, rooted), nil
}

// ConvertToRelativePath returns the path that leads from the directory from to the
// directory to. Components are compared for exact string equality.
func ConvertToRelativePath(from, to string) string {
	fromComponents := splitComponents(from)
	toComponents := splitComponents(to)

	common := 0
	for common < len(fromComponents) && common < len(toComponents) &&
		fromComponents[common] == toComponents[common] {
		common++
	}

	result := make([]string, 0, len(fromComponents)-common+len(toComponents)-common)
	for range fromComponents[common:] {
		result = append(result, parentComponent)
	}
	result = append(result, toComponents[common:]...)

	return join(result, false)
}

// GetFileExt returns the text after the last "." of the file name in path,
// or "" when the name has no dot.
func GetFileExt(path string) string {
	name := GetFileName(path)

	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}

	return name[idx+1:]
}

// GetFileName returns the text after the last separator of path, or path itself
// when it contains no separator. Both '/' and '\' count as separators.
func GetFileName(path string) string {
	idx := strings.LastIndexAny(path, `/\`)
	if idx < 0 {
		return path
	}

	return path[idx+1:]
}

// SanitizePath normalizes both '/' and '\' to the native separator and trims surrounding
// whitespace. Unless isFile is set, a non-empty result always ends with the separator.
// SanitizePath is idempotent.
func SanitizePath(path string, isFile bool) string {
	sep := string(Separator)

	path = strings.ReplaceAll(path, "/", sep)
	path = strings.ReplaceAll(path, `\`, sep)
	path = strings.TrimSpace(path)

	if !isFile && path != "" && !strings.HasSuffix(path, sep) {
		path += sep
	}

	return path
}

// isRooted reports whether the sanitized path starts at the filesystem root.
func isRooted(path string) bool {
	return strings.HasPrefix(SanitizePath(path, true), string(Separator))
}

// join joins components with the separator and sanitizes the result as a directory.
func join(components []string, rooted bool) string {
	joined := strings.Join(components, string(Separator))
	if rooted {
		joined = string(Separator) + joined
	}

	return SanitizePath(joined, false)
}

// splitComponents sanitizes path and returns its non-empty components.
func splitComponents(path string) []string {
	parts := strings.Split(SanitizePath(path, true), string(Separator))

	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			components = append(components, part)
		}
	}

	return components
}

package walk

import (
	"fmt"
	"strings"

	fserrors "github.com/joe/fsutil/pkg/errors"
)

// Kind classifies a directory entry.
type Kind int

// Entry kinds.
const (
	KindFile Kind = iota
	KindDir
)

// String returns "file" or "dir".
func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}

	return "file"
}

// KindFilter selects which entry kinds an iterator yields.
// Filtering never affects which directories are descended into.
type KindFilter int

// Kind filters.
const (
	FilesOnly KindFilter = iota
	DirsOnly
	Both
)

// ParseKindFilter parses "files", "dirs" or "both" (case-insensitive).
func ParseKindFilter(value string) (KindFilter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "files", "file":
		return FilesOnly, nil
	case "dirs", "dir":
		return DirsOnly, nil
	case "both", "all":
		return Both, nil
	default:
		return Both, fmt.Errorf("%w: unknown kind filter %q (expected files, dirs or both)",
			fserrors.ErrInvalidInput, value)
	}
}

// String returns the name accepted by ParseKindFilter.
func (f KindFilter) String() string {
	switch f {
	case FilesOnly:
		return "files"
	case DirsOnly:
		return "dirs"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("KindFilter(%d)", int(f))
	}
}

// Includes reports whether entries of kind pass the filter.
func (f KindFilter) Includes(kind Kind) bool {
	switch f {
	case FilesOnly:
		return kind == KindFile
	case DirsOnly:
		return kind == KindDir
	default:
		return true
	}
}

// Package hierarchy lists directory trees into slices, optionally filtered by a
// caller-supplied predicate.
package hierarchy

import (
	"github.com/joe/fsutil/pkg/filesystem"
	"github.com/joe/fsutil/pkg/walk"
)

// Predicate decides whether a listed entry is kept.
type Predicate func(walk.Entry) bool

// List walks path and returns the entries that pass kind and predicate, in walk
// order. A nil predicate keeps every entry.
// If the walk fails partway, the error is returned and no entries are.
func List(
	fsys filesystem.FileSystem,
	path string,
	kind walk.KindFilter,
	currentOnly bool,
	predicate Predicate,
) ([]walk.Entry, error) {
	it, err := walk.New(fsys, path, kind, currentOnly)
	if err != nil {
		return nil, err
	}

	var entries []walk.Entry

	for entry := range it.All() {
		if predicate == nil || predicate(entry) {
			entries = append(entries, entry)
		}
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Paths returns the full path of every entry.
func Paths(entries []walk.Entry) []string {
	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.FullPath()
	}

	return paths
}

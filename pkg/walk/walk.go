// Package walk implements a depth-first directory iterator that keeps an explicit
// stack of open directory handles instead of recursing. Entries are produced lazily,
// one per call to Next, so a caller can stop at any point and release every handle
// with Close.
package walk

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/filesystem"
	"github.com/joe/fsutil/pkg/pathutil"
)

// Entry is one item produced by an Iterator.
type Entry struct {
	// Name is the entry's name within its directory.
	Name string
	// Path is the containing directory, sanitized with a trailing separator.
	Path string
	Kind Kind

	Size    int64
	ModTime time.Time
}

// FullPath returns the entry's path (Path + Name).
func (e Entry) FullPath() string {
	return e.Path + e.Name
}

// Iterator walks a directory tree depth-first. A directory entry is reported
// before anything inside it. Order within a directory is whatever the
// directory handle yields.
//
// Iterators are not safe for concurrent use.
type Iterator struct {
	fsys        filesystem.FileSystem
	filter      KindFilter
	currentOnly bool
	stack       []frame
	err         error
}

// frame is one open directory on the traversal stack.
type frame struct {
	dir    string
	handle filesystem.DirHandle
}

// New opens root and returns an iterator positioned before its first entry.
// With currentOnly set, only the direct children of root are produced.
// The error wraps ErrPathNotFound when root cannot be opened as a directory.
func New(fsys filesystem.FileSystem, root string, filter KindFilter, currentOnly bool) (*Iterator, error) {
	root = pathutil.SanitizePath(root, false)

	handle, err := fsys.OpenDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fserrors.ErrPathNotFound, root, err)
	}

	return &Iterator{
		fsys:        fsys,
		filter:      filter,
		currentOnly: currentOnly,
		stack:       []frame{{dir: root, handle: handle}},
	}, nil
}

// All returns a single-use sequence over the remaining entries.
// The iterator is closed when the range loop finishes or breaks.
func (it *Iterator) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		defer func() {
			_ = it.Close()
		}()

		for {
			entry, ok := it.Next()
			if !ok || !yield(entry) {
				return
			}
		}
	}
}

// Close releases every open directory handle. It is safe to call more than once.
func (it *Iterator) Close() error {
	var errs []error

	for len(it.stack) > 0 {
		if err := it.pop(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Err returns the error that stopped the walk, if any.
// Should be checked after Next returns false.
func (it *Iterator) Err() error {
	return it.err
}

// Next advances to the next entry that passes the kind filter.
// It returns false once the walk is complete or has failed; see Err.
func (it *Iterator) Next() (Entry, bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]

		name, err := top.handle.Next()
		if errors.Is(err, io.EOF) {
			if it.currentOnly {
				if err := it.Close(); err != nil {
					it.fail(err)
				}

				return Entry{}, false
			}

			if err := it.pop(); err != nil {
				it.fail(err)
				return Entry{}, false
			}

			continue
		}

		if err != nil {
			it.fail(err)
			return Entry{}, false
		}

		if name == "." || name == ".." {
			continue
		}

		entry, err := it.classify(top.dir, name)
		if err != nil {
			it.fail(err)
			return Entry{}, false
		}

		// Descend regardless of the filter so files-only walks still see nested files.
		if entry.Kind == KindDir && !it.currentOnly {
			if err := it.push(entry.FullPath() + string(pathutil.Separator)); err != nil {
				it.fail(err)
				return Entry{}, false
			}
		}

		if !it.filter.Includes(entry.Kind) {
			continue
		}

		return entry, true
	}

	return Entry{}, false
}

// classify describes dir+name without following symlinks. A symlink is reported
// as a file, so links to directories are never descended into and dangling
// links do not stop the walk.
func (it *Iterator) classify(dir, name string) (Entry, error) {
	info, err := it.fsys.Lstat(dir + name)
	if err != nil {
		return Entry{}, err //nolint:wrapcheck // The filesystem already names the path
	}

	kind := KindFile
	if info.IsDir() {
		kind = KindDir
	}

	return Entry{
		Name:    name,
		Path:    dir,
		Kind:    kind,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// fail records err (if it is the first) and releases all handles.
func (it *Iterator) fail(err error) {
	if it.err == nil {
		it.err = err
	}

	_ = it.Close()
}

func (it *Iterator) pop() error {
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	return top.handle.Close() //nolint:wrapcheck // The filesystem already names the directory
}

// push opens dir, which is already sanitized. Names taken from a directory
// listing are not re-sanitized, since they may hold a literal backslash.
func (it *Iterator) push(dir string) error {
	handle, err := it.fsys.OpenDir(dir)
	if err != nil {
		return err //nolint:wrapcheck // The filesystem already names the path
	}

	it.stack = append(it.stack, frame{dir: dir, handle: handle})

	return nil
}

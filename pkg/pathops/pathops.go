// Package pathops provides directory-level operations built on the walk iterator:
// path verification, recursive creation, recursive emptying and file probes.
package pathops

import (
	"errors"
	"fmt"
	"strings"

	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/filesystem"
	"github.com/joe/fsutil/pkg/hierarchy"
	"github.com/joe/fsutil/pkg/pathutil"
	"github.com/joe/fsutil/pkg/walk"
)

// EmptyPolicy controls how EmptyDir reacts to a failed deletion.
type EmptyPolicy int

// Empty policies.
const (
	// BestEffort attempts every deletion and reports all failures together.
	BestEffort EmptyPolicy = iota
	// AbortOnError stops at the first failed deletion.
	AbortOnError
)

// CreatePath creates path and any missing ancestors, one level at a time.
// Levels created before a failure are left in place.
func CreatePath(fsys filesystem.FileSystem, path string) error {
	if ok, _ := VerifyPath(fsys, path); ok {
		return nil
	}

	sanitized := pathutil.SanitizePath(path, false)
	if sanitized == "" {
		return fmt.Errorf("%w: empty path", fserrors.ErrInvalidInput)
	}

	sep := string(pathutil.Separator)
	prefix := ""

	for i, component := range strings.Split(sanitized, sep) {
		if component == "" {
			if i == 0 {
				prefix = sep
			}

			continue
		}

		prefix += component + sep

		if ok, _ := VerifyPath(fsys, prefix); ok {
			continue
		}

		if err := fsys.Mkdir(prefix); err != nil {
			return fmt.Errorf("%w %s: %w", fserrors.ErrMkdirFailure, prefix, err)
		}
	}

	return nil
}

// EmptyDir deletes everything below path, deepest entries first. path itself is kept.
// Under BestEffort every failure is collected; under AbortOnError the first one is returned.
func EmptyDir(fsys filesystem.FileSystem, path string, policy EmptyPolicy) error {
	entries, err := hierarchy.List(fsys, path, walk.Both, false, nil)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", path, err)
	}

	var errs []error

	for i := len(entries) - 1; i >= 0; i-- {
		err := remove(fsys, entries[i])
		if err == nil {
			continue
		}

		if policy == AbortOnError {
			return err
		}

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Exists reports whether path names an existing file or directory.
func Exists(fsys filesystem.FileSystem, path string) bool {
	_, err := fsys.Stat(path)

	return err == nil
}

// FileCreatable reports whether a new file could be created at path. The probe file
// is removed again; an already existing file is not creatable.
func FileCreatable(fsys filesystem.FileSystem, path string) bool {
	file, err := fsys.CreateExclusive(path)
	if err != nil {
		return false
	}

	_ = file.Close()
	_ = fsys.Remove(path)

	return true
}

// FileExists reports whether path can be opened for reading.
func FileExists(fsys filesystem.FileSystem, path string) bool {
	file, err := fsys.Open(path)
	if err != nil {
		return false
	}

	_ = file.Close()

	return true
}

// VerifyPath reports whether path is a directory whose listing can be read.
// Plain files do not verify; use Exists for a kind-agnostic check.
func VerifyPath(fsys filesystem.FileSystem, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, fmt.Errorf("%w: empty path", fserrors.ErrInvalidInput)
	}

	handle, err := fsys.OpenDir(path)
	if err != nil {
		return false, fmt.Errorf("%w: %s", fserrors.ErrPathNotFound, path)
	}

	defer func() {
		_ = handle.Close()
	}()

	// Every readable directory lists at least ".".
	if _, err := handle.Next(); err != nil {
		return false, fmt.Errorf("%w: %s", fserrors.ErrPathNotFound, path)
	}

	return true, nil
}

func remove(fsys filesystem.FileSystem, entry walk.Entry) error {
	target := entry.FullPath()

	if entry.Kind == walk.KindDir {
		if err := fsys.RemoveDir(target); err != nil {
			return fmt.Errorf("%w %s: %w", fserrors.ErrRmdirFailure, target, err)
		}

		return nil
	}

	if err := fsys.Remove(target); err != nil {
		return fmt.Errorf("%w %s: %w", fserrors.ErrDeleteFailure, target, err)
	}

	return nil
}

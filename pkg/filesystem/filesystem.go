// Package filesystem provides an abstraction layer over the host filesystem primitives
// the fsutil packages need: directory handles, metadata lookup, file open/create,
// single-level mkdir and removal. Implementations exist for the local disk, an
// in-memory mock for tests, and SFTP.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// dirBatchSize is the number of names fetched from the host per directory read.
const dirBatchSize = 64

// DirHandle is an open directory. Next yields one entry name per call, including
// "." and "..", and returns io.EOF once the directory is exhausted.
type DirHandle interface {
	Next() (string, error)
	io.Closer
}

// File is an interface that abstracts file operations.
// This allows us to work with both real files and mock files.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Stat() (os.FileInfo, error)
}

// FileSystem is an interface that abstracts filesystem operations.
// This allows for dependency injection and testing with mock implementations.
type FileSystem interface {
	// OpenDir opens path as a directory. It fails for plain files.
	OpenDir(path string) (DirHandle, error)
	// Stat follows symlinks; Lstat describes the link itself.
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)

	// Open opens a file for reading.
	Open(path string) (File, error)
	// Create creates or truncates a file for writing.
	Create(path string) (File, error)
	// CreateExclusive creates a file for writing and fails if it already exists.
	CreateExclusive(path string) (File, error)

	// Mkdir creates a single directory level.
	Mkdir(path string) error
	// Remove deletes a file.
	Remove(path string) error
	// RemoveDir deletes an empty directory.
	RemoveDir(path string) error
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Create creates a file for writing.
func (fs *RealFileSystem) Create(path string) (File, error) {
	file, err := os.Create(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return file, nil
}

// CreateExclusive creates a file for writing, failing if it exists.
func (fs *RealFileSystem) CreateExclusive(path string) (File, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return file, nil
}

// Lstat returns file information without following a final symlink.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// Mkdir creates a single directory.
func (fs *RealFileSystem) Mkdir(path string) error {
	err := os.Mkdir(path, DefaultDirPermissions)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// Open opens a file for reading.
func (fs *RealFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// OpenDir opens a directory for reading entry names.
func (fs *RealFileSystem) OpenDir(path string) (DirHandle, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat directory %s: %w", path, err)
	}

	if !info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open directory %s: %w",
			path, &os.PathError{Op: "opendir", Path: path, Err: syscall.ENOTDIR})
	}

	return &realDirHandle{file: file}, nil
}

// Remove removes a file.
func (fs *RealFileSystem) Remove(path string) error {
	err := os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// RemoveDir removes an empty directory.
func (fs *RealFileSystem) RemoveDir(path string) error {
	err := os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove directory %s: %w", path, err)
	}

	return nil
}

// Stat returns file information.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// realDirHandle reads names from an open *os.File in batches. The host's "." and ".."
// entries are not reported by the os package, so they are synthesized first.
type realDirHandle struct {
	file    *os.File
	dots    int
	pending []string
	done    bool
}

// Close closes the underlying directory file.
func (h *realDirHandle) Close() error {
	err := h.file.Close()
	if err != nil {
		return fmt.Errorf("failed to close directory %s: %w", h.file.Name(), err)
	}

	return nil
}

// Next returns the next entry name, or io.EOF when the directory is exhausted.
func (h *realDirHandle) Next() (string, error) {
	if h.dots < len(dotEntries) {
		h.dots++
		return dotEntries[h.dots-1], nil
	}

	if len(h.pending) == 0 {
		if h.done {
			return "", io.EOF
		}

		names, err := h.file.Readdirnames(dirBatchSize)
		if len(names) == 0 {
			h.done = true
			if err == nil || errors.Is(err, io.EOF) {
				return "", io.EOF
			}

			return "", fmt.Errorf("failed to read directory %s: %w", h.file.Name(), err)
		}

		h.pending = names
	}

	name := h.pending[0]
	h.pending = h.pending[1:]

	return name, nil
}

// Exported constants.
const (
	// DefaultDirPermissions is the permission mode for created directories.
	DefaultDirPermissions = 0o750
	// DefaultFilePermissions is the permission mode for exclusively created files.
	DefaultFilePermissions = 0o644
)

//nolint:gochecknoglobals // Fixed names every directory handle reports first
var dotEntries = []string{".", ".."}

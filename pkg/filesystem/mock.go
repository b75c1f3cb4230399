package filesystem

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// Mock operation names accepted by FailOn.
const (
	OpCreate  = "create"
	OpMkdir   = "mkdir"
	OpOpen    = "open"
	OpOpenDir = "opendir"
	OpReadDir = "readdir"
	OpRemove  = "remove"
	OpRmdir   = "rmdir"
	OpLstat   = "lstat"
	OpStat    = "stat"
	OpWrite   = "write"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
// Paths are normalized to slash form, so sanitized host paths can be used directly.
// Directory listings are sorted and include "." and "..".
type MockFileSystem struct {
	mu       sync.RWMutex
	files    map[string]*mockFile
	failures map[string]error
	openDirs int
}

// NewMockFileSystem creates a new in-memory filesystem containing only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: map[string]*mockFile{
			"/": {path: "/", modTime: time.Now(), isDir: true, perm: DefaultDirPermissions},
		},
		failures: make(map[string]error),
	}
}

// mockFile represents a file in the mock filesystem.
type mockFile struct {
	path    string
	data    []byte
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return fi.modeBits() }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

func (fi *mockFileInfo) modeBits() os.FileMode {
	if fi.isDir {
		return fi.perm | os.ModeDir
	}

	return fi.perm
}

// mockFileHandle implements the File interface. Writes go straight to the stored file.
type mockFileHandle struct {
	fs       *MockFileSystem
	path     string
	offset   int
	writable bool
	closed   bool
}

func (f *mockFileHandle) Read(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}

	f.fs.mu.RLock()
	defer f.fs.mu.RUnlock()

	file, exists := f.fs.files[f.path]
	if !exists {
		return 0, &os.PathError{Op: "read", Path: f.path, Err: os.ErrNotExist}
	}

	if f.offset >= len(file.data) {
		return 0, io.EOF
	}

	n := copy(p, file.data[f.offset:])
	f.offset += n

	return n, nil
}

func (f *mockFileHandle) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}

	if !f.writable {
		return 0, &os.PathError{Op: "write", Path: f.path, Err: syscall.EBADF}
	}

	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	if err := f.fs.failureLocked(OpWrite, f.path); err != nil {
		return 0, err
	}

	file, exists := f.fs.files[f.path]
	if !exists {
		return 0, &os.PathError{Op: "write", Path: f.path, Err: os.ErrNotExist}
	}

	file.data = append(file.data, p...)
	file.modTime = time.Now()

	return len(p), nil
}

func (f *mockFileHandle) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true

	return nil
}

func (f *mockFileHandle) Stat() (os.FileInfo, error) {
	if f.closed {
		return nil, os.ErrClosed
	}

	return f.fs.Stat(f.path)
}

// mockDirHandle yields a snapshot of a directory listing taken at open time.
type mockDirHandle struct {
	fs     *MockFileSystem
	path   string
	names  []string
	closed bool
}

func (h *mockDirHandle) Next() (string, error) {
	if h.closed {
		return "", os.ErrClosed
	}

	if err := h.fs.failure(OpReadDir, h.path); err != nil {
		return "", err
	}

	if len(h.names) == 0 {
		return "", io.EOF
	}

	name := h.names[0]
	h.names = h.names[1:]

	return name, nil
}

func (h *mockDirHandle) Close() error {
	if h.closed {
		return os.ErrClosed
	}
	h.closed = true

	h.fs.mu.Lock()
	h.fs.openDirs--
	h.fs.mu.Unlock()

	return nil
}

// Create creates or truncates a file for writing.
func (fs *MockFileSystem) Create(path string) (File, error) {
	return fs.create(path, false)
}

// CreateExclusive creates a file for writing and fails if it already exists.
func (fs *MockFileSystem) CreateExclusive(path string) (File, error) {
	return fs.create(path, true)
}

// Mkdir creates a single directory level. The parent must exist.
func (fs *MockFileSystem) Mkdir(path string) error {
	key := mockKey(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpMkdir, key); err != nil {
		return err
	}

	if _, exists := fs.files[key]; exists {
		return &os.PathError{Op: "mkdir", Path: key, Err: os.ErrExist}
	}

	if err := fs.checkParentLocked("mkdir", key); err != nil {
		return err
	}

	fs.files[key] = &mockFile{path: key, modTime: time.Now(), isDir: true, perm: DefaultDirPermissions}

	return nil
}

// Open opens a file for reading.
func (fs *MockFileSystem) Open(path string) (File, error) {
	key := mockKey(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpOpen, key); err != nil {
		return nil, err
	}

	file, exists := fs.files[key]
	if !exists {
		return nil, &os.PathError{Op: "open", Path: key, Err: os.ErrNotExist}
	}

	if file.isDir {
		return nil, &os.PathError{Op: "open", Path: key, Err: syscall.EISDIR}
	}

	return &mockFileHandle{fs: fs, path: key}, nil
}

// OpenDir opens a directory and snapshots its sorted listing.
func (fs *MockFileSystem) OpenDir(path string) (DirHandle, error) {
	key := mockKey(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpOpenDir, key); err != nil {
		return nil, err
	}

	file, exists := fs.files[key]
	if !exists {
		return nil, &os.PathError{Op: "opendir", Path: key, Err: os.ErrNotExist}
	}

	if !file.isDir {
		return nil, &os.PathError{Op: "opendir", Path: key, Err: syscall.ENOTDIR}
	}

	names := append([]string{".", ".."}, fs.childrenLocked(key)...)
	fs.openDirs++

	return &mockDirHandle{fs: fs, path: key, names: names}, nil
}

// Remove deletes a file. Directories are rejected.
func (fs *MockFileSystem) Remove(path string) error {
	key := mockKey(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpRemove, key); err != nil {
		return err
	}

	file, exists := fs.files[key]
	if !exists {
		return &os.PathError{Op: "remove", Path: key, Err: os.ErrNotExist}
	}

	if file.isDir {
		return &os.PathError{Op: "remove", Path: key, Err: syscall.EISDIR}
	}

	delete(fs.files, key)

	return nil
}

// RemoveDir deletes an empty directory.
func (fs *MockFileSystem) RemoveDir(path string) error {
	key := mockKey(path)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpRmdir, key); err != nil {
		return err
	}

	file, exists := fs.files[key]
	if !exists {
		return &os.PathError{Op: "rmdir", Path: key, Err: os.ErrNotExist}
	}

	if !file.isDir {
		return &os.PathError{Op: "rmdir", Path: key, Err: syscall.ENOTDIR}
	}

	if len(fs.childrenLocked(key)) > 0 {
		return &os.PathError{Op: "rmdir", Path: key, Err: syscall.ENOTEMPTY}
	}

	delete(fs.files, key)

	return nil
}

// Lstat returns file information. The mock holds no symlinks, so it matches Stat
// apart from its failure key.
func (fs *MockFileSystem) Lstat(filePath string) (os.FileInfo, error) {
	return fs.info(OpLstat, filePath)
}

// Stat returns file information.
func (fs *MockFileSystem) Stat(filePath string) (os.FileInfo, error) {
	return fs.info(OpStat, filePath)
}

// Helper methods for testing

// AddDir adds a directory, creating missing parents.
func (fs *MockFileSystem) AddDir(path string, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.mkdirAllLocked(mockKey(path), modTime)
}

// AddFile adds a file with the given content and modtime, creating missing parents.
func (fs *MockFileSystem) AddFile(filePath string, content []byte, modTime time.Time) {
	key := mockKey(filePath)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.mkdirAllLocked(path.Dir(key), modTime)
	fs.files[key] = &mockFile{
		path:    key,
		data:    append([]byte(nil), content...),
		modTime: modTime,
		perm:    DefaultFilePermissions,
	}
}

// Exists checks if a path exists in the mock filesystem.
func (fs *MockFileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, exists := fs.files[mockKey(path)]

	return exists
}

// FailOn makes the named operation on path return err until ClearFailures is called.
func (fs *MockFileSystem) FailOn(op, path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.failures[failureKey(op, mockKey(path))] = err
}

// ClearFailures removes every injected failure.
func (fs *MockFileSystem) ClearFailures() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.failures = make(map[string]error)
}

// GetFile retrieves a file's content from the mock filesystem.
func (fs *MockFileSystem) GetFile(path string) ([]byte, time.Time, error) {
	key := mockKey(path)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	file, exists := fs.files[key]
	if !exists {
		return nil, time.Time{}, &os.PathError{Op: "open", Path: key, Err: os.ErrNotExist}
	}

	if file.isDir {
		return nil, time.Time{}, &os.PathError{Op: "open", Path: key, Err: syscall.EISDIR}
	}

	return append([]byte(nil), file.data...), file.modTime, nil
}

// ListFiles returns all paths in the mock filesystem, sorted.
func (fs *MockFileSystem) ListFiles() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

// OpenDirCount returns the number of directory handles that are open.
func (fs *MockFileSystem) OpenDirCount() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return fs.openDirs
}

// checkParentLocked verifies the parent of key exists and is a directory.
func (fs *MockFileSystem) checkParentLocked(op, key string) error {
	parent, exists := fs.files[path.Dir(key)]
	if !exists {
		return &os.PathError{Op: op, Path: key, Err: os.ErrNotExist}
	}

	if !parent.isDir {
		return &os.PathError{Op: op, Path: key, Err: syscall.ENOTDIR}
	}

	return nil
}

// childrenLocked returns the sorted names of the direct children of the directory key.
func (fs *MockFileSystem) childrenLocked(key string) []string {
	prefix := key + "/"
	if key == "/" {
		prefix = "/"
	}

	var names []string
	for p := range fs.files {
		if p == key || !strings.HasPrefix(p, prefix) {
			continue
		}

		rest := p[len(prefix):]
		if rest != "" && !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	sort.Strings(names)

	return names
}

func (fs *MockFileSystem) create(filePath string, exclusive bool) (File, error) {
	key := mockKey(filePath)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.failureLocked(OpCreate, key); err != nil {
		return nil, err
	}

	if existing, exists := fs.files[key]; exists {
		if exclusive {
			return nil, &os.PathError{Op: "open", Path: key, Err: os.ErrExist}
		}
		if existing.isDir {
			return nil, &os.PathError{Op: "open", Path: key, Err: syscall.EISDIR}
		}
	}

	if err := fs.checkParentLocked("open", key); err != nil {
		return nil, err
	}

	fs.files[key] = &mockFile{
		path:    key,
		data:    []byte{},
		modTime: time.Now(),
		perm:    DefaultFilePermissions,
	}

	return &mockFileHandle{fs: fs, path: key, writable: true}, nil
}

func (fs *MockFileSystem) failure(op, key string) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return fs.failureLocked(op, key)
}

func (fs *MockFileSystem) failureLocked(op, key string) error {
	err, found := fs.failures[failureKey(op, key)]
	if !found {
		return nil
	}

	return fmt.Errorf("%s %s: %w", op, key, err)
}

func (fs *MockFileSystem) info(op, filePath string) (os.FileInfo, error) {
	key := mockKey(filePath)

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(op, key); err != nil {
		return nil, err
	}

	file, exists := fs.files[key]
	if !exists {
		return nil, &os.PathError{Op: op, Path: key, Err: os.ErrNotExist}
	}

	return &mockFileInfo{
		name:    path.Base(key),
		size:    int64(len(file.data)),
		modTime: file.modTime,
		isDir:   file.isDir,
		perm:    file.perm,
	}, nil
}

func (fs *MockFileSystem) mkdirAllLocked(key string, modTime time.Time) {
	if _, exists := fs.files[key]; exists || key == "/" {
		return
	}

	fs.mkdirAllLocked(path.Dir(key), modTime)
	fs.files[key] = &mockFile{path: key, modTime: modTime, isDir: true, perm: DefaultDirPermissions}
}

func failureKey(op, key string) string {
	return op + "\x00" + key
}

// mockKey normalizes a host path to the mock's rooted slash form.
func mockKey(p string) string {
	p = strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")

	return path.Clean("/" + p)
}

package filesystem

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem over a single SFTP session.
// Host paths are converted to slash form before they reach the server.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a filesystem backed by an open SFTP client.
func NewSFTPFileSystem(client *sftp.Client) *SFTPFileSystem {
	return &SFTPFileSystem{client: client}
}

// Create creates or truncates a remote file for writing.
func (fs *SFTPFileSystem) Create(filePath string) (File, error) {
	file, err := fs.client.Create(remotePath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create remote file %s: %w", filePath, err)
	}

	return newSFTPFile(file, filePath), nil
}

// CreateExclusive creates a remote file, failing if it already exists.
func (fs *SFTPFileSystem) CreateExclusive(filePath string) (File, error) {
	file, err := fs.client.OpenFile(remotePath(filePath), os.O_WRONLY|os.O_CREATE|os.O_EXCL)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote file %s: %w", filePath, err)
	}

	return newSFTPFile(file, filePath), nil
}

// Lstat returns file information for a remote path without following a final symlink.
func (fs *SFTPFileSystem) Lstat(filePath string) (os.FileInfo, error) {
	info, err := fs.client.Lstat(remotePath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote file %s: %w", filePath, err)
	}

	return info, nil
}

// Mkdir creates a single remote directory.
func (fs *SFTPFileSystem) Mkdir(dirPath string) error {
	err := fs.client.Mkdir(remotePath(dirPath))
	if err != nil {
		return fmt.Errorf("failed to create remote directory %s: %w", dirPath, err)
	}

	return nil
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(filePath string) (File, error) {
	file, err := fs.client.Open(remotePath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", filePath, err)
	}

	return newSFTPFile(file, filePath), nil
}

// OpenDir lists a remote directory. SFTP has no streaming directory handle,
// so the listing is fetched once and served from memory.
func (fs *SFTPFileSystem) OpenDir(dirPath string) (DirHandle, error) {
	remote := remotePath(dirPath)

	info, err := fs.client.Stat(remote)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote directory %s: %w", dirPath, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open remote directory %s: %w",
			dirPath, &os.PathError{Op: "opendir", Path: dirPath, Err: syscall.ENOTDIR})
	}

	infos, err := fs.client.ReadDir(remote)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dirPath, err)
	}

	names := make([]string, 0, len(infos)+len(dotEntries))
	names = append(names, dotEntries...)
	for _, entry := range infos {
		// OpenSSH reports the dot entries itself, pkg/sftp servers do not.
		if name := entry.Name(); name != "." && name != ".." {
			names = append(names, name)
		}
	}
	sort.Strings(names[len(dotEntries):])

	return &listDirHandle{names: names}, nil
}

// Remove removes a remote file.
func (fs *SFTPFileSystem) Remove(filePath string) error {
	err := fs.client.Remove(remotePath(filePath))
	if err != nil {
		return fmt.Errorf("failed to remove remote file %s: %w", filePath, err)
	}

	return nil
}

// RemoveDir removes an empty remote directory.
func (fs *SFTPFileSystem) RemoveDir(dirPath string) error {
	err := fs.client.RemoveDirectory(remotePath(dirPath))
	if err != nil {
		return fmt.Errorf("failed to remove remote directory %s: %w", dirPath, err)
	}

	return nil
}

// Stat returns file information for a remote file.
func (fs *SFTPFileSystem) Stat(filePath string) (os.FileInfo, error) {
	info, err := fs.client.Stat(remotePath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", filePath, err)
	}

	return info, nil
}

// listDirHandle serves a directory listing captured up front.
type listDirHandle struct {
	names  []string
	closed bool
}

func (h *listDirHandle) Close() error {
	if h.closed {
		return os.ErrClosed
	}
	h.closed = true

	return nil
}

func (h *listDirHandle) Next() (string, error) {
	if h.closed {
		return "", os.ErrClosed
	}

	if len(h.names) == 0 {
		return "", io.EOF
	}

	name := h.names[0]
	h.names = h.names[1:]

	return name, nil
}

// remotePath converts a host path to the cleaned slash form SFTP servers expect.
func remotePath(hostPath string) string {
	return path.Clean(filepath.ToSlash(hostPath))
}

package filesystem

import (
	"fmt"
	"os"

	"github.com/pkg/sftp"
)

// SFTPFile wraps sftp.File to implement the filesystem.File interface.
type SFTPFile struct {
	file *sftp.File
	path string
}

// newSFTPFile creates a new SFTPFile wrapper.
func newSFTPFile(file *sftp.File, path string) *SFTPFile {
	return &SFTPFile{
		file: file,
		path: path,
	}
}

// Close closes the SFTP file.
func (f *SFTPFile) Close() error {
	err := f.file.Close()
	if err != nil {
		return fmt.Errorf("failed to close remote file %s: %w", f.path, err)
	}

	return nil
}

// Read reads from the SFTP file.
func (f *SFTPFile) Read(p []byte) (int, error) {
	return f.file.Read(p) //nolint:wrapcheck // io.EOF must reach callers unwrapped
}

// Stat returns file information for the SFTP file.
func (f *SFTPFile) Stat() (os.FileInfo, error) {
	info, err := f.file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", f.path, err)
	}

	return info, nil
}

// Write writes to the SFTP file.
func (f *SFTPFile) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write remote file %s: %w", f.path, err)
	}

	return n, nil
}

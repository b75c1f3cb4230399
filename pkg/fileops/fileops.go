// Package fileops provides chunked file copying with an overwrite policy, plus
// byte-level comparison and hashing of files through the filesystem abstraction.
package fileops

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/filesystem"
	"github.com/joe/fsutil/pkg/pathops"
	"github.com/joe/fsutil/pkg/pathutil"
)

// Exported constants.
const (
	// BufferSize is the size of the buffers used when comparing files (32KB)
	BufferSize = 32 * 1024
	// DefaultChunkSize is the copy chunk size used when none is given (1MB)
	DefaultChunkSize = 1024 * 1024
)

// CopyOptions tunes CopyFile. The zero value copies in DefaultChunkSize chunks
// and refuses to overwrite.
type CopyOptions struct {
	ChunkSize int
	Overwrite bool

	// Progress, if set, is called after every chunk.
	Progress ProgressCallback
	// SourceFS, if set, is read from instead of the destination filesystem.
	SourceFS filesystem.FileSystem
	// Verify byte-compares source and destination after copying.
	Verify bool
}

// ProgressCallback is called during file operations to report progress
type ProgressCallback func(bytesTransferred int64, totalBytes int64, currentFile string)

// CompareFilesBytes reports whether two files have identical contents.
func CompareFilesBytes(fsys filesystem.FileSystem, path1, path2 string) (bool, error) {
	return compareAcross(fsys, path1, fsys, path2)
}

// ComputeFileHash computes the hex SHA256 of a file.
func ComputeFileHash(fsys filesystem.FileSystem, filePath string) (string, error) {
	file, err := fsys.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()

	_, err = io.Copy(hash, file)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s for hashing: %w", filePath, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// CopyFile copies source to destPath+fileName in fixed-size chunks and returns the
// number of bytes written. destPath must be an existing directory. An existing
// destination file is an error unless opts.Overwrite is set.
// The first failure aborts the copy and leaves the partial destination in place.
func CopyFile(fsys filesystem.FileSystem, source, destPath, fileName string, opts CopyOptions) (int64, error) {
	srcFS := opts.SourceFS
	if srcFS == nil {
		srcFS = fsys
	}

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if ok, _ := pathops.VerifyPath(fsys, destPath); !ok {
		return 0, fmt.Errorf("%w: %s", fserrors.ErrDestinationInvalid, destPath)
	}

	sourceFile, err := srcFS.Open(source)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", fserrors.ErrSourceUnreadable, source, err)
	}

	defer func() {
		_ = sourceFile.Close()
	}()

	dst := pathutil.SanitizePath(destPath, false) + fileName

	if !opts.Overwrite && pathops.Exists(fsys, dst) {
		return 0, fmt.Errorf("%w: %s", fserrors.ErrFileExists, dst)
	}

	var total int64
	if info, err := sourceFile.Stat(); err == nil {
		total = info.Size()
	}

	destFile, err := fsys.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", fserrors.ErrWriteFailure, err)
	}

	written, err := copyChunks(sourceFile, destFile, make([]byte, chunkSize), total, source, opts.Progress)
	if err != nil {
		_ = destFile.Close()
		return written, err
	}

	// Remote writes can surface on close.
	if err := destFile.Close(); err != nil {
		return written, fmt.Errorf("%w: %w", fserrors.ErrWriteFailure, err)
	}

	if opts.Verify {
		identical, err := compareAcross(srcFS, source, fsys, dst)
		if err != nil {
			return written, fmt.Errorf("%w %s: %w", fserrors.ErrVerifyFailure, dst, err)
		}

		if !identical {
			return written, fmt.Errorf("%w %s: contents differ from %s", fserrors.ErrVerifyFailure, dst, source)
		}
	}

	return written, nil
}

// compareAcross compares a file on one filesystem with a file on another.
func compareAcross(fs1 filesystem.FileSystem, path1 string, fs2 filesystem.FileSystem, path2 string) (bool, error) {
	file1, err := fs1.Open(path1)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", path1, err)
	}

	defer func() {
		_ = file1.Close()
	}()

	file2, err := fs2.Open(path2)
	if err != nil {
		return false, fmt.Errorf("failed to open file %s: %w", path2, err)
	}

	defer func() {
		_ = file2.Close()
	}()

	info1, err := file1.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat file %s: %w", path1, err)
	}

	info2, err := file2.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat file %s: %w", path2, err)
	}

	// Quick size check
	if info1.Size() != info2.Size() {
		return false, nil
	}

	identical, err := compareFileContents(file1, file2)
	if err != nil {
		return false, fmt.Errorf("failed to compare %s and %s: %w", path1, path2, err)
	}

	return identical, nil
}

// compareFileContents performs a byte-by-byte comparison of two open files.
// io.ReadFull keeps both sides aligned when a reader returns short reads.
func compareFileContents(file1, file2 io.Reader) (bool, error) {
	buf1 := make([]byte, BufferSize)
	buf2 := make([]byte, BufferSize)

	for {
		//nolint:varnamelen // n1/n2 are idiomatic for bytes read
		n1, err1 := io.ReadFull(file1, buf1)
		n2, err2 := io.ReadFull(file2, buf2)

		if n1 != n2 || string(buf1[:n1]) != string(buf2[:n2]) {
			return false, nil
		}

		end1 := errors.Is(err1, io.EOF) || errors.Is(err1, io.ErrUnexpectedEOF)
		end2 := errors.Is(err2, io.EOF) || errors.Is(err2, io.ErrUnexpectedEOF)

		if end1 && end2 {
			return true, nil
		}

		if err1 != nil && !end1 {
			return false, fmt.Errorf("failed to read from first file: %w", err1)
		}

		if err2 != nil && !end2 {
			return false, fmt.Errorf("failed to read from second file: %w", err2)
		}

		if end1 != end2 {
			return false, nil
		}
	}
}

// copyChunks copies src to dst one buffer at a time, reporting progress per chunk.
//
//nolint:lll // Long function signature with many parameters
func copyChunks(src io.Reader, dst io.Writer, buf []byte, total int64, srcPath string, progress ProgressCallback) (int64, error) {
	var written int64

	for {
		nr, err := src.Read(buf) //nolint:varnamelen // nr is idiomatic for bytes read
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr]) //nolint:varnamelen // nw is idiomatic for bytes written
			if werr != nil {
				return written, fmt.Errorf("%w: %w", fserrors.ErrWriteFailure, werr)
			}

			if nw != nr {
				return written, fmt.Errorf("%w: %w", fserrors.ErrWriteFailure, io.ErrShortWrite)
			}

			written += int64(nw)

			if progress != nil {
				progress(written, total, srcPath)
			}
		}

		if errors.Is(err, io.EOF) {
			return written, nil
		}

		if err != nil {
			return written, fmt.Errorf("%w %s: %w", fserrors.ErrSourceUnreadable, srcPath, err)
		}
	}
}

package filesystem

import (
	"fmt"
)

// Mount is a FileSystem bound to the path a command line named on it.
type Mount struct {
	FS FileSystem
	// Path is the path to use with FS, with any sftp:// prefix removed.
	Path     string
	Location *ParsedPath

	closer func() error
}

// Close releases the SFTP connection behind a remote mount. It is a no-op for
// local mounts and safe to call more than once.
func (m *Mount) Close() error {
	if m == nil || m.closer == nil {
		return nil
	}

	closer := m.closer
	m.closer = nil

	return closer()
}

// Remote reports whether the mount is served over SFTP.
func (m *Mount) Remote() bool {
	return m.Location.IsRemote
}

// CreateFileSystem mounts the filesystem pathStr lives on. Local paths use the
// host filesystem; sftp:// URLs open an SSH connection.
func CreateFileSystem(pathStr string, opts ConnectOptions) (*Mount, error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, err
	}

	if !parsed.IsRemote {
		return &Mount{FS: NewRealFileSystem(), Path: parsed.LocalPath, Location: parsed}, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s@%s: %w", parsed.User, parsed.Address(), err)
	}

	return &Mount{
		FS:       NewSFTPFileSystem(conn.Client()),
		Path:     parsed.Path,
		Location: parsed,
		closer:   conn.Close,
	}, nil
}

// CreateFileSystemPair mounts the source and destination of a copy. If the
// destination cannot be mounted the source mount is closed again.
func CreateFileSystemPair(sourcePath, destPath string, opts ConnectOptions) (source, dest *Mount, err error) {
	source, err = CreateFileSystem(sourcePath, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create source filesystem: %w", err)
	}

	dest, err = CreateFileSystem(destPath, opts)
	if err != nil {
		_ = source.Close()
		return nil, nil, fmt.Errorf("failed to create destination filesystem: %w", err)
	}

	return source, dest, nil
}

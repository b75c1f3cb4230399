package filesystem

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	fserrors "github.com/joe/fsutil/pkg/errors"
)

// DefaultSFTPPort is used when an sftp:// URL names no port.
const DefaultSFTPPort = 22

// ParsedPath is either a local path or the parts of an sftp:// URL.
type ParsedPath struct {
	IsRemote bool

	// LocalPath is set for local paths.
	LocalPath string

	// Remote parts.
	Host string
	Port int
	User string
	Path string
}

// Address returns host:port for remote paths.
func (p *ParsedPath) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// String returns the local path, or user@host:port:path for remote paths.
func (p *ParsedPath) String() string {
	if !p.IsRemote {
		return p.LocalPath
	}

	return fmt.Sprintf("%s@%s:%s", p.User, p.Address(), p.Path)
}

// ParsePath detects whether path is an sftp://user@host[:port]/path URL or a local path.
//
// Remote path convention:
//   - sftp://user@host/data   → "data", relative to the login directory
//   - sftp://user@host//data  → "/data", absolute
//   - sftp://user@host or sftp://user@host/ → "." (the login directory)
func ParsePath(path string) (*ParsedPath, error) {
	if !strings.HasPrefix(path, "sftp://") {
		return &ParsedPath{LocalPath: path}, nil
	}

	return parseSFTPURL(path)
}

func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("%w: invalid SFTP URL: %w", fserrors.ErrInvalidPath, err)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("%w: SFTP URL must include username (sftp://user@host/path)", fserrors.ErrInvalidPath)
	}

	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: SFTP URL must include host", fserrors.ErrInvalidPath)
	}

	port := DefaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("%w: invalid port number %q", fserrors.ErrInvalidPath, portStr)
		}
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Path:     remoteURLPath(u.Path),
	}, nil
}

// remoteURLPath strips the separator between host and path.
func remoteURLPath(urlPath string) string {
	switch {
	case urlPath == "" || urlPath == "/":
		return "."
	case strings.HasPrefix(urlPath, "//"):
		return urlPath[1:]
	default:
		return strings.TrimPrefix(urlPath, "/")
	}
}

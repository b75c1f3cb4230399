package cli

import (
	"github.com/joe/fsutil/internal/config"
	"github.com/joe/fsutil/pkg/filesystem"
)

// Resolve mounts the filesystems cfg's paths live on and rewrites remote URLs in
// cfg to plain remote paths. The returned closer releases SFTP connections and
// is never nil.
func Resolve(cfg *config.Config) (fsys, sourceFS filesystem.FileSystem, closer func(), err error) {
	opts := cfg.ConnectOptions()
	noop := func() {}

	switch {
	case cfg.Copy != nil:
		source, dest, err := filesystem.CreateFileSystemPair(cfg.Copy.Source, cfg.Copy.Dest, opts)
		if err != nil {
			return nil, nil, noop, err //nolint:wrapcheck // Already names the failing side
		}

		cfg.Copy.Source, cfg.Copy.Dest = source.Path, dest.Path

		return dest.FS, source.FS, func() {
			_ = source.Close()
			_ = dest.Close()
		}, nil
	case len(cfg.Paths()) == 0:
		return filesystem.NewRealFileSystem(), nil, noop, nil
	}

	target := pathField(cfg)

	mount, err := filesystem.CreateFileSystem(*target, opts)
	if err != nil {
		return nil, nil, noop, err //nolint:wrapcheck // Already names the host
	}

	*target = mount.Path

	return mount.FS, nil, func() { _ = mount.Close() }, nil
}

// pathField returns the single path field of a one-path command.
func pathField(cfg *config.Config) *string {
	switch {
	case cfg.List != nil:
		return &cfg.List.Path
	case cfg.Verify != nil:
		return &cfg.Verify.Path
	case cfg.Mkdir != nil:
		return &cfg.Mkdir.Path
	default:
		return &cfg.Empty.Path
	}
}

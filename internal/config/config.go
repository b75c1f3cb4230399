// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexflint/go-arg"

	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/filesystem"
	"github.com/joe/fsutil/pkg/hierarchy"
	"github.com/joe/fsutil/pkg/pathutil"
	"github.com/joe/fsutil/pkg/walk"
)

// Exported variables.
var (
	ErrNoCommand = errors.New("a command is required (ls, verify, mkdir, empty, cp, rel, abs)")
)

// KindFlag is a walk.KindFilter that go-arg can parse.
type KindFlag walk.KindFilter

// Filter returns the underlying walk.KindFilter.
func (k KindFlag) Filter() walk.KindFilter {
	return walk.KindFilter(k)
}

// String returns the string representation of KindFlag
func (k KindFlag) String() string {
	return walk.KindFilter(k).String()
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (k *KindFlag) UnmarshalText(text []byte) error {
	parsed, err := walk.ParseKindFilter(string(text))
	if err != nil {
		return err //nolint:wrapcheck // Already carries the offending value
	}
	*k = KindFlag(parsed)
	return nil
}

// ListCmd lists a directory hierarchy.
type ListCmd struct {
	Path        string   `arg:"positional,required" help:"Directory to list (local path or sftp://user@host[:port]/path)"`
	Kind        KindFlag `arg:"-k,--kind" default:"both" help:"Entry kinds to list: files|dirs|both"`
	CurrentOnly bool     `arg:"-c,--current-only" help:"Do not descend into subdirectories"`
	Long        bool     `arg:"-l,--long" help:"Show modification times"`
	Pattern     string   `arg:"-p,--pattern" help:"Glob matched case-insensitively against paths relative to PATH (supports **, {a,b})"`
}

// VerifyCmd checks that a directory exists and can be listed.
type VerifyCmd struct {
	Path string `arg:"positional,required" help:"Directory to verify"`
}

// MkdirCmd creates a directory and any missing parents.
type MkdirCmd struct {
	Path string `arg:"positional,required" help:"Directory to create"`
}

// EmptyCmd deletes everything inside a directory.
type EmptyCmd struct {
	Path         string `arg:"positional,required" help:"Directory to empty (the directory itself is kept)"`
	AbortOnError bool   `arg:"--abort-on-error" help:"Stop at the first failed deletion instead of attempting every one"`
}

// CopyCmd copies a single file into a directory.
type CopyCmd struct {
	Source    string `arg:"positional,required" help:"File to copy"`
	Dest      string `arg:"positional,required" help:"Existing destination directory"`
	Name      string `arg:"-n,--name" help:"Destination file name (default: the source file name)"`
	ChunkSize int    `arg:"--chunk-size" default:"1048576" help:"Copy chunk size in bytes"`
	Overwrite bool   `arg:"-f,--overwrite" help:"Replace an existing destination file"`
	Verify    bool   `arg:"--verify" help:"Compare source and destination byte by byte after copying"`
}

// RelCmd prints the relative path from one directory to another.
type RelCmd struct {
	From string `arg:"positional,required" help:"Starting directory"`
	To   string `arg:"positional,required" help:"Target directory"`
}

// AbsCmd resolves a relative path against a base directory.
type AbsCmd struct {
	Base string `arg:"positional,required" help:"Base directory"`
	Rel  string `arg:"positional,required" help:"Relative path to resolve"`
}

// Config holds the application configuration
type Config struct {
	List   *ListCmd   `arg:"subcommand:ls" help:"List a directory hierarchy"`
	Verify *VerifyCmd `arg:"subcommand:verify" help:"Check that a directory exists and is readable"`
	Mkdir  *MkdirCmd  `arg:"subcommand:mkdir" help:"Create a directory and any missing parents"`
	Empty  *EmptyCmd  `arg:"subcommand:empty" help:"Delete everything inside a directory"`
	Copy   *CopyCmd   `arg:"subcommand:cp" help:"Copy a file into a directory in fixed-size chunks"`
	Rel    *RelCmd    `arg:"subcommand:rel" help:"Print the relative path between two directories"`
	Abs    *AbsCmd    `arg:"subcommand:abs" help:"Resolve a relative path against a base directory"`

	Verbose         bool   `arg:"-v,--verbose" help:"Log every step to stderr"`
	LogFile         string `arg:"--log" help:"Write a timestamped log to this file"`
	NoColor         bool   `arg:"--no-color" help:"Disable colored output (also honored: NO_COLOR)"`
	KnownHosts      string `arg:"--known-hosts" help:"known_hosts file for SFTP (default: ~/.ssh/known_hosts)"`
	InsecureHostKey bool   `arg:"--insecure-host-key" help:"Skip SFTP host key verification"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Filesystem helpers: hierarchy listing, path creation and cleanup, and chunked file copy"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "fsutil 1.0.0"
}

// Command returns the name of the selected subcommand, or "" if none.
func (cfg *Config) Command() string {
	switch {
	case cfg.List != nil:
		return "ls"
	case cfg.Verify != nil:
		return "verify"
	case cfg.Mkdir != nil:
		return "mkdir"
	case cfg.Empty != nil:
		return "empty"
	case cfg.Copy != nil:
		return "cp"
	case cfg.Rel != nil:
		return "rel"
	case cfg.Abs != nil:
		return "abs"
	default:
		return ""
	}
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// Parse parses args (without the program name). Help and version requests are
// returned as arg.ErrHelp and arg.ErrVersion.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	parser, err := arg.NewParser(arg.Config{Program: "fsutil"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	err = parser.Parse(args)
	if err != nil {
		return nil, err //nolint:wrapcheck // Callers compare against arg.ErrHelp
	}

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	switch cfg.Command() {
	case "":
		return nil, ErrNoCommand
	case "ls":
		if err := ValidateFilePattern(cfg.List.Pattern); err != nil {
			return nil, err
		}
	case "cp":
		if cfg.Copy.ChunkSize <= 0 {
			return nil, fmt.Errorf("%w: chunk size must be positive, got %d", fserrors.ErrInvalidInput, cfg.Copy.ChunkSize)
		}

		if cfg.Copy.Name == "" {
			cfg.Copy.Name = pathutil.GetFileName(strings.TrimRight(cfg.Copy.Source, `/\`))
		}

		if cfg.Copy.Name == "" || strings.ContainsAny(cfg.Copy.Name, `/\`) {
			return nil, fmt.Errorf("%w: invalid destination file name %q", fserrors.ErrInvalidInput, cfg.Copy.Name)
		}
	}

	if err := cfg.ValidatePaths(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Paths returns the filesystem paths the selected command operates on.
// rel and abs are pure path computations and return none.
func (cfg *Config) Paths() []string {
	switch cfg.Command() {
	case "ls":
		return []string{cfg.List.Path}
	case "verify":
		return []string{cfg.Verify.Path}
	case "mkdir":
		return []string{cfg.Mkdir.Path}
	case "empty":
		return []string{cfg.Empty.Path}
	case "cp":
		return []string{cfg.Copy.Source, cfg.Copy.Dest}
	default:
		return nil
	}
}

// ValidatePaths checks that every path is non-blank and that remote paths are well-formed.
func (cfg *Config) ValidatePaths() error {
	for _, path := range cfg.Paths() {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: path must not be empty", fserrors.ErrInvalidInput)
		}

		if strings.HasPrefix(path, "sftp://") {
			if err := validateSFTPURL(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// ConnectOptions returns the SFTP settings as filesystem connect options.
func (cfg *Config) ConnectOptions() filesystem.ConnectOptions {
	return filesystem.ConnectOptions{
		KnownHostsFile:        cfg.KnownHosts,
		InsecureIgnoreHostKey: cfg.InsecureHostKey,
	}
}

// ValidateFilePattern checks that pattern is a well-formed glob. Empty is valid.
func ValidateFilePattern(pattern string) error {
	if !hierarchy.NewGlobFilter("", pattern).Valid() {
		return fmt.Errorf("%w: invalid pattern %q", fserrors.ErrInvalidInput, pattern)
	}

	return nil
}

// validateSFTPURL checks the sftp://user@host/path shape.
func validateSFTPURL(url string) error {
	rest := strings.TrimPrefix(url, "sftp://")

	at := strings.Index(rest, "@")
	if at <= 0 {
		return fmt.Errorf("%w: SFTP URL must include username (sftp://user@host/path): %s", fserrors.ErrInvalidPath, url)
	}

	slash := strings.Index(rest[at:], "/")
	if slash < 0 {
		return fmt.Errorf("%w: SFTP URL must include path (sftp://user@host/path): %s", fserrors.ErrInvalidPath, url)
	}

	if slash == 1 {
		return fmt.Errorf("%w: SFTP URL must include host (sftp://user@host/path): %s", fserrors.ErrInvalidPath, url)
	}

	return nil
}

//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package config_test

import (
	"strings"
	"testing"

	"github.com/joe/fsutil/internal/config"
)

// TestValidateSFTPURL tests the unexported validateSFTPURL function indirectly through ValidatePaths
func TestValidateSFTPURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sourcePath string
		destPath   string
		wantErr    bool
		errMsg     string
	}{
		{"valid SFTP URLs", "sftp://user@host/path", "sftp://user@host/dest", false, ""},
		{"valid SFTP URL with port", "sftp://user@host:22/path/to/file", "sftp://admin@server/dest", false, ""},
		{"local source remote dest", "/data/file.bin", "sftp://user@host/upload", false, ""},
		{"remote source local dest", "sftp://user@host/file.bin", "/data", false, ""},
		{"trailing slash is valid", "sftp://user@host/", "sftp://user@host/dest", false, ""},
		{"source missing username", "sftp://host/path", "sftp://user@host/dest", true, "must include username"},
		{"source missing path", "sftp://user@host", "sftp://user@host/dest", true, "must include path"},
		{"dest missing username", "sftp://user@host/source", "sftp://host/dest", true, "must include username"},
		{"dest missing path", "sftp://user@host/source", "sftp://user@host", true, "must include path"},
		{"dest missing host", "sftp://user@host/source", "sftp://user@/dest", true, "must include host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Config{
				Copy: &config.CopyCmd{
					Source:    tt.sourcePath,
					Dest:      tt.destPath,
					Name:      "file.bin",
					ChunkSize: 1,
				},
			}

			err := cfg.ValidatePaths()

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Error message %q does not contain %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

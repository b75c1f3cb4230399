package errors_test

import (
	"testing"

	"github.com/joe/fsutil/pkg/errors"
)

func TestPatternMatcher_Match(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{"permission denied", "open /srv/a: permission denied", errors.CategoryPermission},
		{"uppercase permission", "PERMISSION DENIED", errors.CategoryPermission},
		{"read-only fs", "mkdir /mnt/ro/x: read-only file system", errors.CategoryPermission},
		{"no space", "write /tmp/x: No Space Left On Device", errors.CategoryDiskSpace},
		{"not empty", "remove /tmp/d: directory not empty", errors.CategoryDelete},
		{"file exists", "mkdir /tmp/a: file exists", errors.CategoryExists},
		{"missing path", "stat /nope: no such file or directory", errors.CategoryPath},
		{"not a directory", "open /etc/hosts/x: not a directory", errors.CategoryPath},
		{"short write", "short write", errors.CategoryCopy},
		{"io error", "read /dev/sdb: input/output error", errors.CategoryCopy},
		{"unknown", "something odd happened", errors.CategoryUnknown},
		{"permission beats path", "cannot open source file: open /a: permission denied", errors.CategoryPermission},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		order: []ErrorCategory{
			CategoryPermission,
			CategoryDiskSpace,
			CategoryDelete,
			CategoryExists,
			CategoryPath,
			CategoryCopy,
		},
		patterns: map[ErrorCategory][]string{
			CategoryPermission: {
				"permission denied",
				"access denied",
				"operation not permitted",
				"read-only file system",
			},
			CategoryDiskSpace: {
				"no space left on device",
				"disk full",
				"quota exceeded",
			},
			CategoryDelete: {
				"directory not empty",
				"cannot remove",
			},
			CategoryExists: {
				"file exists",
			},
			CategoryPath: {
				"no such file or directory",
				"file not found",
				"path does not exist",
				"not a directory",
			},
			CategoryCopy: {
				"short write",
				"input/output error",
				"i/o error",
			},
		},
	}
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	order    []ErrorCategory
	patterns map[ErrorCategory][]string
}

// Match returns the error category based on pattern matching.
// Categories are checked in a fixed order so root causes (permission, space)
// win over the symptom reported by the wrapping operation.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, category := range m.order {
		for _, pattern := range m.patterns[category] {
			if strings.Contains(lowerMsg, pattern) {
				return category
			}
		}
	}

	return CategoryUnknown
}

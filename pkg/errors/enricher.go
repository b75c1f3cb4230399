package errors

import (
	stderrors "errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances
	pathExtractionPatterns = []*regexp.Regexp{
		// Unix paths (absolute and relative)
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
		// Windows paths with forward slashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:/[^\s:]+):`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich takes an error and returns an ActionableError carrying a category and suggestions.
// If the error is already an ActionableError, it is returned unchanged.
// If affectedPath is empty, attempts to extract a path from the error message.
// Returns nil for a nil error.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if stderrors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	category := e.categorize(err, errMsg)
	suggestions := e.generator.Generate(category, affectedPath)

	return NewActionableError(err, category, suggestions, affectedPath)
}

// categorize resolves the category: permission and disk space patterns first,
// then the wrapped sentinel, then the remaining message patterns.
func (e *enricher) categorize(err error, errMsg string) ErrorCategory {
	matched := e.matcher.Match(errMsg)
	if matched == CategoryPermission || matched == CategoryDiskSpace {
		return matched
	}

	if category := CategoryOf(err); category != CategoryUnknown {
		return category
	}

	return matched
}

// extractPath attempts to extract a file path from common Go error message formats.
// Returns empty string if no path is found.
//
// Recognized formats:
//   - "open /path/to/file: permission denied"
//   - "mkdir /srv/backup: no such file or directory"
//   - "remove C:\Windows\temp\data: directory not empty"
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}

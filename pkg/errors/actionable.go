// Package errors defines the error taxonomy of the fsutil packages and enriches
// failures with a category and actionable suggestions for display.
//
// Every operation wraps one of the sentinel errors (ErrPathNotFound, ErrMkdirFailure, ...)
// so callers can branch with the standard errors.Is:
//
//	err := pathops.CreatePath(fsys, "/srv/backup/2024")
//	if errors.Is(err, fserrors.ErrMkdirFailure) {
//	    ...
//	}
//
// The Enricher turns any error into an ActionableError for the CLI:
//
//	enricher := errors.NewEnricher()
//	actionable := enricher.Enrich(err, "")
//	fmt.Println(actionable.Error())
//	fmt.Println(errors.FormatSuggestions(actionable))
//
// When no path is given, the enricher extracts one from the error message
// ("mkdir /srv/backup: permission denied" yields "/srv/backup").
package errors

import "strings"

// Exported constants.
const (
	CategoryCopy       ErrorCategory = "copy"
	CategoryCreate     ErrorCategory = "create"
	CategoryDelete     ErrorCategory = "delete"
	CategoryDiskSpace  ErrorCategory = "disk_space"
	CategoryExists     ErrorCategory = "exists"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	Unwrap() error
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError wrapping cause.
func NewActionableError(
	cause error,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		cause:        cause,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list.
// Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	cause        error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.cause.Error()
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap exposes the original error so errors.Is keeps matching the sentinels.
func (e *actionableError) Unwrap() error {
	return e.cause
}

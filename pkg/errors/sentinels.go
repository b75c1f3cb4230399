package errors

import stderrors "errors"

// Sentinel errors returned (wrapped) by the fsutil packages. Callers branch with errors.Is.
var (
	ErrInvalidInput       = stderrors.New("invalid input")
	ErrInvalidPath        = stderrors.New("invalid path")
	ErrPathNotFound       = stderrors.New("path does not exist")
	ErrDestinationInvalid = stderrors.New("destination path not valid")
	ErrSourceUnreadable   = stderrors.New("cannot open source file")
	ErrFileExists         = stderrors.New("file exists")
	ErrWriteFailure       = stderrors.New("error writing file")
	ErrMkdirFailure       = stderrors.New("cannot create directory")
	ErrRmdirFailure       = stderrors.New("cannot remove directory")
	ErrDeleteFailure      = stderrors.New("cannot delete file")
	ErrVerifyFailure      = stderrors.New("copy verification failed")
)

//nolint:gochecknoglobals // Lookup table is read-only after init
var sentinelCategories = []struct {
	sentinel error
	category ErrorCategory
}{
	{ErrPathNotFound, CategoryPath},
	{ErrInvalidPath, CategoryPath},
	{ErrInvalidInput, CategoryPath},
	{ErrDestinationInvalid, CategoryPath},
	{ErrSourceUnreadable, CategoryPath},
	{ErrFileExists, CategoryExists},
	{ErrWriteFailure, CategoryCopy},
	{ErrVerifyFailure, CategoryCopy},
	{ErrMkdirFailure, CategoryCreate},
	{ErrRmdirFailure, CategoryDelete},
	{ErrDeleteFailure, CategoryDelete},
}

// CategoryOf returns the category of the first sentinel err wraps, or CategoryUnknown.
func CategoryOf(err error) ErrorCategory {
	for _, entry := range sentinelCategories {
		if stderrors.Is(err, entry.sentinel) {
			return entry.category
		}
	}

	return CategoryUnknown
}

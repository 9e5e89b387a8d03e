package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Storage & demo-mode sentinel values
var (
	ErrNotFound       = errors.New("not found")
	ErrDemoModeActive = errors.New("cannot modify data in demo mode")
	ErrStorage        = errors.New("storage failure")
)

// NewNotFound reports an absent record at the single-entity lookup boundary.
// Everywhere else absence is normalized to empty results, never an error.
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDemoModeActive reports a mutation refused because demo mode is on. The
// refusal happens before any file I/O is attempted.
func NewDemoModeActive() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrDemoModeActive,
	}
}

// NewStorageError wraps an unexpected I/O failure on the write path with
// the operation and entity for logging context.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorage,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDemoModeActive(err error) bool {
	return errors.Is(err, ErrDemoModeActive)
}

func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

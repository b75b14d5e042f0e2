package schema

import (
	"errors"
	"fmt"
)

// Standard synthesizer errors
var (
	// ErrDataSourceUnavailable is returned when collection enumeration fails
	ErrDataSourceUnavailable = errors.New("data source unavailable")

	// ErrNoDataSource is returned when resolution is attempted before any
	// data source has been registered
	ErrNoDataSource = errors.New("no data source registered")
)

// DataSourceUnavailableError wraps the cause of a failed collection
// enumeration. Enumeration is not retried; the caller decides presentation.
type DataSourceUnavailableError struct {
	Cause error
}

// Error implements the error interface.
func (e *DataSourceUnavailableError) Error() string {
	return fmt.Sprintf("data source unavailable: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *DataSourceUnavailableError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches ErrDataSourceUnavailable.
func (e *DataSourceUnavailableError) Is(target error) bool {
	return target == ErrDataSourceUnavailable
}

// ResolutionError wraps a failure to open or read a collection during
// schema resolution. No partial schema accompanies it.
type ResolutionError struct {
	Collection string
	Cause      error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving schema for collection %q: %v", e.Collection, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

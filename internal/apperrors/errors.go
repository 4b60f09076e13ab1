// Package apperrors defines the error taxonomy shared by services and
// handlers: validation and not-found errors map to client responses, storage
// and partial failures to server responses.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError signals malformed or missing input. The operation was
// aborted and no state was written.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError signals an unknown entity reference.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// StorageError signals a persistence-layer failure. The requested mutation
// must not be assumed applied unless confirmed by a subsequent read.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps an underlying persistence error.
func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// PartialFailure signals that a fan-out operation wrote some but not all of
// its records. FailedIDs identifies the line items to retry.
type PartialFailure struct {
	Op        string
	FailedIDs []string
	Errs      []error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%s partially failed for items [%s]: %v",
		e.Op, strings.Join(e.FailedIDs, ", "), e.Errs)
}

package simpleportfolio

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error types
var (
	// ErrContentItemNotFound indicates a content item was not found
	ErrContentItemNotFound = errors.New("content item not found")

	// ErrSectionNotFound indicates a custom section was not found
	ErrSectionNotFound = errors.New("custom section not found")

	// ErrObjectNotFound indicates an uploaded object was not found in storage
	ErrObjectNotFound = errors.New("object not found")

	// ErrUploadFailed indicates an upload operation failed
	ErrUploadFailed = errors.New("upload failed")
)

// ValidationError reports a rejected request payload. Fields maps each
// offending field to a human-readable reason so callers can correct input
// field by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a not-found condition for any entity
// family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrContentItemNotFound) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrObjectNotFound)
}

// ContentItemError represents an error related to content item operations
type ContentItemError struct {
	ItemID string
	Op     string
	Err    error
}

func (e *ContentItemError) Error() string {
	return fmt.Sprintf("content item operation %s failed for item %s: %v", e.Op, e.ItemID, e.Err)
}

func (e *ContentItemError) Unwrap() error {
	return e.Err
}

// SectionError represents an error related to custom section operations
type SectionError struct {
	SectionID string
	Op        string
	Err       error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section operation %s failed for section %s: %v", e.Op, e.SectionID, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to blob storage operations
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

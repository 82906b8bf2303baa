package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCollectionNotFound is returned when a collection name is unknown
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable is returned when a record source cannot be read
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrEmptyConversation is returned when exporting a conversation without turns
	ErrEmptyConversation = errors.New("conversation is empty")
)

// CollectionNotFoundError represents a collection not found error with context
type CollectionNotFoundError struct {
	Name string
}

func (e *CollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection named '%s' not found", e.Name)
}

func (e *CollectionNotFoundError) Is(target error) bool {
	return target == ErrCollectionNotFound
}

// NewCollectionNotFoundError creates a new CollectionNotFoundError
func NewCollectionNotFoundError(name string) *CollectionNotFoundError {
	return &CollectionNotFoundError{Name: name}
}

// DataUnavailableError wraps the cause of a failed record load
type DataUnavailableError struct {
	Source string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("data source '%s' unavailable: %v", e.Source, e.Err)
}

func (e *DataUnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// NewDataUnavailableError creates a new DataUnavailableError
func NewDataUnavailableError(source string, err error) *DataUnavailableError {
	return &DataUnavailableError{Source: source, Err: err}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

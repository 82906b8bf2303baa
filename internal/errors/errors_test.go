package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestCollectionNotFoundError(t *testing.T) {
	err := NewCollectionNotFoundError("arsip")

	// Test error message
	expectedMsg := "collection named 'arsip' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrCollectionNotFound) {
		t.Error("Expected error to match ErrCollectionNotFound sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrInvalidInput) {
		t.Error("Error should not match ErrInvalidInput")
	}
}

func TestDataUnavailableError(t *testing.T) {
	cause := fmt.Errorf("failed to open: %w", os.ErrPermission)
	err := NewDataUnavailableError("db_kode.json", cause)

	expectedMsg := "data source 'db_kode.json' unavailable: failed to open: permission denied"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrDataUnavailable) {
		t.Error("Expected error to match ErrDataUnavailable sentinel")
	}

	// The cause stays reachable through Unwrap
	if !errors.Is(err, os.ErrPermission) {
		t.Error("Expected error to match the wrapped cause")
	}
}

func TestValidationError(t *testing.T) {
	// Test with field
	err := NewValidationError("query", "cannot be empty")

	expectedMsg := "validation error for field 'query': cannot be empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewValidationError("", "general validation error")

	expectedMsg2 := "validation error: general validation error"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestErrorWrapping(t *testing.T) {
	originalErr := NewCollectionNotFoundError("arsip")
	wrappedErr := fmt.Errorf("failed to search: %w", originalErr)

	// Should still match the sentinel through wrapping
	if !errors.Is(wrappedErr, ErrCollectionNotFound) {
		t.Error("Expected wrapped error to match ErrCollectionNotFound sentinel")
	}

	// Should be able to extract the original error
	var collectionErr *CollectionNotFoundError
	if !errors.As(wrappedErr, &collectionErr) {
		t.Error("Expected to be able to extract CollectionNotFoundError from wrapped error")
	}

	if collectionErr.Name != "arsip" {
		t.Errorf("Expected collection name 'arsip', got '%s'", collectionErr.Name)
	}
}

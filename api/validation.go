// Package api provides the HTTP interface of the lookup service.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateCollectionName validates a collection name parameter.
// Unknown names are not a validation error; they are reported as not found.
func ValidateCollectionName(name string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if name == "" {
		result.AddError("name", "Collection name is required")
		return result
	}

	if strings.TrimSpace(name) != name {
		result.AddError("name", "Collection name cannot have leading or trailing whitespace")
	}

	return result
}

// ValidateSearchRequest validates a search request
func ValidateSearchRequest(req *SearchRequest, settings config.ScoringSettings) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(req.Query) == "" {
		result.AddError("query", "Query is required and cannot be empty")
	}

	if req.Threshold != nil && (*req.Threshold < -1 || *req.Threshold > settings.MaxScore) {
		result.AddError("threshold", fmt.Sprintf("Threshold must be between -1 and %d", settings.MaxScore))
	}

	return result
}

// ValidateSuggestRequest validates a suggestion request
func ValidateSuggestRequest(req *SuggestRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(req.Query) == "" {
		result.AddError("query", "Query is required and cannot be empty")
	}

	if req.MinRatio != nil && (*req.MinRatio < 0 || *req.MinRatio > 99) {
		result.AddError("min_ratio", "Minimum ratio must be between 0 and 99")
	}

	if req.Limit != nil && (*req.Limit < 1 || *req.Limit > 100) {
		result.AddError("limit", "Limit must be between 1 and 100")
	}

	return result
}

// ValidateRecords validates a replacement collection.
// Records may leave any field empty; only an entirely empty record is rejected.
func ValidateRecords(records model.Collection) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, record := range records {
		if record == (model.Record{}) {
			result.AddError(fmt.Sprintf("records[%d]", i), "Record must have at least one non-empty field")
		}
	}

	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

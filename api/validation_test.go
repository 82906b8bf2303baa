package api

import (
	"testing"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/model"
)

func intPtr(v int) *int { return &v }

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"codes", "kode", true},
		{"document types", "jenis", true},
		{"unknown names are left to the lookup", "arsip", true},
		{"empty", "", false},
		{"surrounding whitespace", " kode ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCollectionName(tt.input)
			if result.Valid != tt.wantValid {
				t.Errorf("ValidateCollectionName(%q).Valid = %v, want %v (errors: %v)", tt.input, result.Valid, tt.wantValid, result.Errors)
			}
		})
	}
}

func TestValidateSearchRequest(t *testing.T) {
	settings := config.DefaultScoringSettings()

	tests := []struct {
		name      string
		req       SearchRequest
		wantField string
	}{
		{"valid", SearchRequest{Query: "pegawai"}, ""},
		{"valid threshold", SearchRequest{Query: "pegawai", Threshold: intPtr(80)}, ""},
		{"threshold admitting everything", SearchRequest{Query: "pegawai", Threshold: intPtr(-1)}, ""},
		{"empty query", SearchRequest{Query: ""}, "query"},
		{"whitespace query", SearchRequest{Query: " \t"}, "query"},
		{"threshold too low", SearchRequest{Query: "pegawai", Threshold: intPtr(-2)}, "threshold"},
		{"threshold too high", SearchRequest{Query: "pegawai", Threshold: intPtr(101)}, "threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSearchRequest(&tt.req, settings)
			if tt.wantField == "" {
				if result.HasErrors() {
					t.Errorf("Expected no errors, got %v", result.Errors)
				}
				return
			}
			if len(result.Errors) != 1 || result.Errors[0].Field != tt.wantField {
				t.Errorf("Expected one error on %q, got %v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestValidateSuggestRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       SuggestRequest
		wantField string
	}{
		{"valid", SuggestRequest{Query: "pegawai"}, ""},
		{"valid overrides", SuggestRequest{Query: "pegawai", MinRatio: intPtr(0), Limit: intPtr(3)}, ""},
		{"empty query", SuggestRequest{}, "query"},
		{"exact ratio is never suggested", SuggestRequest{Query: "pegawai", MinRatio: intPtr(100)}, "min_ratio"},
		{"negative ratio", SuggestRequest{Query: "pegawai", MinRatio: intPtr(-1)}, "min_ratio"},
		{"zero limit", SuggestRequest{Query: "pegawai", Limit: intPtr(0)}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSuggestRequest(&tt.req)
			if tt.wantField == "" {
				if result.HasErrors() {
					t.Errorf("Expected no errors, got %v", result.Errors)
				}
				return
			}
			if len(result.Errors) != 1 || result.Errors[0].Field != tt.wantField {
				t.Errorf("Expected one error on %q, got %v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestValidateRecords(t *testing.T) {
	records := model.Collection{
		{Code: "PP.01", Category: "Kepegawaian"},
		{Description: "only a description"},
		{},
	}

	result := ValidateRecords(records)
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %v", result.Errors)
	}
	if result.Errors[0].Field != "records[2]" {
		t.Errorf("Expected error on records[2], got %q", result.Errors[0].Field)
	}

	if ValidateRecords(model.Collection{}).HasErrors() {
		t.Error("An empty collection is a valid replacement")
	}
}

package persistence

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/couvx/chatbot/model"
)

// LoadRecords decodes a JSON array of records from filePath.
// Fields missing from an object decode to the empty string.
// If the file does not exist, it returns os.ErrNotExist, allowing callers to fall
// back to an empty collection.
func LoadRecords(filePath string) (model.Collection, error) {
	file, err := os.Open(filePath) // #nosec G304 -- filePath comes from configuration, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	return DecodeRecords(file, filePath)
}

// DecodeRecords decodes a JSON array of records from r. The source name is only
// used in error messages.
func DecodeRecords(r io.Reader, source string) (model.Collection, error) {
	var records model.Collection
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records from %s: %w", source, err)
	}
	if records == nil {
		records = model.Collection{}
	}
	return records, nil
}

package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arabiq/showroomseed/internal/models"
	"github.com/arabiq/showroomseed/internal/utils"
)

// WriteFile writes the seed document as indented UTF-8 JSON with a trailing newline
func WriteFile(path string, data *models.SeedFile) error {
	if data == nil {
		return fmt.Errorf("nothing to write to %s", path)
	}
	return utils.WriteJSONFile(path, data)
}

// ReadFile loads a seed document from disk
func ReadFile(path string) (*models.SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data models.SeedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &data, nil
}

package panel

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSpecFromFile loads a panel specification from a JSON file.
func LoadSpecFromFile(filepath string) (*Spec, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read panel spec file: %w", err)
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse panel spec JSON: %w", err)
	}
	if spec.Dims.Width <= 0 || spec.Dims.Height <= 0 {
		return nil, fmt.Errorf("panel spec %q has non-positive dimensions", spec.ID)
	}
	return &spec, nil
}

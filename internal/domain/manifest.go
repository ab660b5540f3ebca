package domain

import (
	"encoding/json"
	"fmt"
)

// Manifest is the contract package descriptor (contract.json) declaring the
// contract's name and semantic version.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ParseManifest decodes a contract manifest and requires a version field.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing contract manifest: %w", err)
	}
	if m.Version == "" {
		return Manifest{}, fmt.Errorf("contract manifest has no version field")
	}
	return m, nil
}

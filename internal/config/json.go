package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a settings file. Unknown keys are rejected so a typo in the
// file is reported instead of silently ignored.
func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg Settings
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json settings %s: %w", jsonFilePath, err)
	}

	return &cfg, nil
}

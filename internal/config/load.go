package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultScenarioFilename is the default scenario filename.
const DefaultScenarioFilename = "scenario.yaml"

// Parse decodes YAML data into a generic value tree.
func Parse(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return ValueOf(raw), nil
}

// LoadFile reads and decodes a scenario file.
func LoadFile(path string) (Value, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// DefaultScenarioPath returns the default path for the scenario file in
// the current working directory.
func DefaultScenarioPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultScenarioFilename
	}
	return filepath.Join(cwd, DefaultScenarioFilename)
}

// FindScenarioFile returns the scenario file to use: the given path
// when non-empty, otherwise scenario.yaml in the current directory.
func FindScenarioFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	candidate := DefaultScenarioPath()
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("no scenario file found: %s does not exist (use --config)", DefaultScenarioFilename)
	}
	return candidate, nil
}

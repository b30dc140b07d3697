package directive

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML directive file from the given path.
func LoadFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a ConfigFile.
func Parse(data []byte) (*ConfigFile, error) {
	var cfg ConfigFile

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directive YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *ConfigFile) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"./..."}
	}
}

// Marshal serializes a ConfigFile to YAML.
func Marshal(cfg *ConfigFile) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a ConfigFile to the given path.
func WriteFile(cfg *ConfigFile, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal directive: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write directive file %s: %w", path, err)
	}

	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

const ownerReadWriteAccess = 0600

// Export writes the given document (a metadata table or a config struct) to
// the file at the specified path, formatted by extension: JSON for ".json",
// YAML otherwise.
func Export(doc any, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	var err error
	switch ext {
	case "json":
		err = ToJSONFile(doc, path)
	default: // yaml, yml
		err = ToYAMLFile(doc, path)
	}
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}
	return nil
}

// ToYAMLFile writes the document to a YAML file at the specified path.
// Returns an error if decoding the document, marshaling to YAML, or file writing fails.
func ToYAMLFile(doc any, filename string) error {
	var m map[string]any
	if err := mapstructure.Decode(doc, &m); err != nil {
		return fmt.Errorf("failed to decode document to map: %w", err)
	}
	if len(m) == 0 {
		return fmt.Errorf("document appears empty or unsupported, nothing to write")
	}

	bb, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map to yaml: %w", err)
	}
	if err := os.WriteFile(filename, bb, ownerReadWriteAccess); err != nil {
		return fmt.Errorf("failed to write yaml to file: %w", err)
	}
	return nil
}

// ToJSONFile writes the document to a JSON file at the specified path.
// Returns an error if decoding the document, marshaling to JSON, or file writing fails.
func ToJSONFile(doc any, filename string) error {
	var m map[string]any
	if err := mapstructure.Decode(doc, &m); err != nil {
		return fmt.Errorf("failed to decode document to map: %w", err)
	}
	if len(m) == 0 {
		return fmt.Errorf("document appears empty or unsupported, nothing to write")
	}

	bb, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal map to json: %w", err)
	}
	if err := os.WriteFile(filename, bb, ownerReadWriteAccess); err != nil {
		return fmt.Errorf("failed to write json to file: %w", err)
	}
	return nil
}
